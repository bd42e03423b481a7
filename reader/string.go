package reader

import (
	"io"
	"strconv"
	"unicode"
	"unicode/utf16"
)

// readQuotedString reads and decodes a string value up to and including its
// closing quote (the opening quote has already been consumed).
func (r *Reader) readQuotedString(quote rune) (string, error) {
	var buf []rune
	for {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				return "", r.syntaxf("unterminated string")
			}
			return "", r.ioError(err)
		}
		switch ru {
		case quote:
			return string(buf), nil
		case '\\':
			decoded, err := r.readEscape(quote)
			if err != nil {
				return "", err
			}
			// a \uXXXX low surrogate right after a high one completes a pair
			if n := len(buf); n > 0 && utf16.IsSurrogate(decoded) {
				if c := utf16.DecodeRune(buf[n-1], decoded); c != unicode.ReplacementChar {
					buf[n-1] = c
					continue
				}
			}
			buf = append(buf, decoded)
		default:
			if ru < 0x20 && !r.strictness.AtLeastLegacy() {
				return "", r.syntaxf("unescaped control character %s in string", quoteRune(ru))
			}
			buf = append(buf, ru)
		}
	}
}

func (r *Reader) readEscape(quote rune) (rune, error) {
	ru, err := r.next()
	if err != nil {
		if err == io.EOF {
			return 0, r.syntaxf("unterminated string")
		}
		return 0, r.ioError(err)
	}
	switch ru {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return r.readUnicodeEscape()
	case '\'':
		if r.strictness.AtLeastLegacy() {
			return '\'', nil
		}
		return 0, r.syntaxf(`invalid escape sequence "\\'"`)
	case '\n':
		if r.strictness.AtLeastLegacy() {
			return '\n', nil
		}
		return 0, r.syntaxf(`invalid escape sequence: literal newline`)
	default:
		if ru == quote {
			return quote, nil
		}
		return 0, r.syntaxf("invalid escape sequence %s", quoteRune(ru))
	}
}

func (r *Reader) readUnicodeEscape() (rune, error) {
	var v rune
	for i := 0; i < 4; i++ {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				return 0, r.syntaxf("unterminated \\u escape")
			}
			return 0, r.ioError(err)
		}
		d, ok := hexDigit(ru)
		if !ok {
			return 0, r.syntaxf("malformed \\u escape")
		}
		v = v<<4 | rune(d)
	}
	return v, nil
}

func hexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
