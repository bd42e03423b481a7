package reader

import (
	"io"

	"github.com/go-jsonkit/jsontok/scope"
)

// nextNonWhitespace returns the next rune that is neither ASCII whitespace
// nor (in lenient mode) part of a comment.
func (r *Reader) nextNonWhitespace() (rune, error) {
	for {
		ru, err := r.next()
		if err != nil {
			return 0, err
		}
		switch ru {
		case ' ', '\t', '\r', '\n':
			continue
		case '/':
			if !r.strictness.IsLenient() {
				return ru, nil
			}
			ru2, err := r.next()
			if err != nil {
				return ru, nil // let the caller deal with a lone '/' at EOF
			}
			switch ru2 {
			case '/':
				if err := r.skipLineComment(); err != nil {
					return 0, err
				}
				continue
			case '*':
				if err := r.skipBlockComment(); err != nil {
					return 0, err
				}
				continue
			default:
				r.backup(ru2)
				return ru, nil
			}
		case '#':
			if r.strictness.IsLenient() {
				if err := r.skipLineComment(); err != nil {
					return 0, err
				}
				continue
			}
			return ru, nil
		}
		return ru, nil
	}
}

func (r *Reader) skipLineComment() error {
	for {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if ru == '\n' {
			return nil
		}
	}
}

func (r *Reader) skipBlockComment() error {
	for {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				return r.syntaxf("unterminated comment")
			}
			return err
		}
		if ru == '*' {
			ru2, err := r.next()
			if err != nil {
				if err == io.EOF {
					return r.syntaxf("unterminated comment")
				}
				return err
			}
			if ru2 == '/' {
				return nil
			}
			r.backup(ru2)
		}
	}
}

// nonExecutePrefix is the exact sequence lenient mode silently consumes once
// at the very start of a stream.
const nonExecutePrefix = ")]}'\n"

func (r *Reader) consumeNonExecutePrefix() error {
	for i := 0; i < len(nonExecutePrefix); i++ {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return r.ioError(err)
		}
		if ru != rune(nonExecutePrefix[i]) {
			r.backup(ru)
			return nil
		}
	}
	return nil
}

// isBarewordTerminator reports whether r ends an unquoted literal/keyword in
// the given dialect.
func (r *Reader) isBarewordTerminator(ru rune) bool {
	switch ru {
	case ' ', '\t', '\r', '\n', ',', ':', '{', '}', '[', ']', '"', '\'', '/':
		return true
	case ';', '=':
		return r.strictness.IsLenient()
	}
	return false
}

// parseValue reads and classifies the next JSON value, setting r.peeked and
// any associated decoded payload.
func (r *Reader) parseValue() (peekKind, error) {
	ru, err := r.nextNonWhitespace()
	if err != nil {
		if err == io.EOF {
			return peekNone, r.syntaxf("unexpected end of input, expected value")
		}
		return peekNone, r.ioError(err)
	}
	switch ru {
	case '{':
		if err := r.push(scope.EmptyObject); err != nil {
			return peekNone, err
		}
		return r.setPeek(peekBeginObject), nil
	case '[':
		if err := r.push(scope.EmptyArray); err != nil {
			return peekNone, err
		}
		return r.setPeek(peekBeginArray), nil
	case '"':
		s, err := r.readQuotedString('"')
		if err != nil {
			return peekNone, err
		}
		r.peekedString, r.hasPeekedString = s, true
		return r.setPeek(peekString), nil
	case '\'':
		if !r.strictness.IsLenient() {
			return peekNone, r.syntaxf("single-quoted strings are not allowed")
		}
		s, err := r.readQuotedString('\'')
		if err != nil {
			return peekNone, err
		}
		r.peekedString, r.hasPeekedString = s, true
		return r.setPeek(peekString), nil
	}
	if ru == '-' || (ru >= '0' && ru <= '9') {
		r.backup(ru)
		return r.scanNumber()
	}
	r.backup(ru)
	word, err := r.scanBareword()
	if err != nil {
		return peekNone, err
	}
	if word == "" {
		ru2, _ := r.next()
		return peekNone, r.syntaxf("unexpected character %q, expected value", ru2)
	}
	switch {
	case word == "true" || (!r.strictCase() && lowerWord(word) == "true"):
		return r.setPeek(peekTrue), nil
	case word == "false" || (!r.strictCase() && lowerWord(word) == "false"):
		return r.setPeek(peekFalse), nil
	case word == "null" || (!r.strictCase() && lowerWord(word) == "null"):
		return r.setPeek(peekNull), nil
	}
	if !r.strictness.IsLenient() {
		return peekNone, r.syntaxf("unexpected value %q", word)
	}
	r.peekedString, r.hasPeekedString = word, true
	return r.setPeek(peekString), nil
}

// strictCase reports whether keyword matching must be exact-case (true only
// under dialect.Strict).
func (r *Reader) strictCase() bool {
	return r.strictness == 0 // dialect.Strict
}

func lowerWord(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// scanBareword reads a maximal run of non-terminator runes, used for
// keywords and (in lenient mode) unquoted names, strings and literals like
// NaN/Infinity.
func (r *Reader) scanBareword() (string, error) {
	return r.continueBareword(nil)
}

// continueBareword resumes a bareword scan that has already collected
// prefix, reading further runes until a terminator (left unconsumed).
func (r *Reader) continueBareword(prefix []rune) (string, error) {
	buf := prefix
	for {
		ru, err := r.next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", r.ioError(err)
		}
		if r.isBarewordTerminator(ru) {
			r.backup(ru)
			break
		}
		buf = append(buf, ru)
	}
	return string(buf), nil
}
