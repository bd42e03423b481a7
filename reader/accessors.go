package reader

import (
	"math"
	"strconv"

	"github.com/go-jsonkit/jsontok/token"
)

// Peek returns the kind of the next token without consuming it. Calling Peek
// repeatedly without an intervening consuming call returns the same result.
func (r *Reader) Peek() (token.Kind, error) {
	k, err := r.doPeek()
	if err != nil {
		return token.EndDocument, err
	}
	return k.kind(), nil
}

// HasNext reports whether there is another element in the current array or
// object (false at END_ARRAY, END_OBJECT or END_DOCUMENT).
func (r *Reader) HasNext() (bool, error) {
	k, err := r.doPeek()
	if err != nil {
		return false, err
	}
	return k != peekEndArray && k != peekEndObject && k != peekEndDocument, nil
}

func (r *Reader) expect(want peekKind, verb string) error {
	k, err := r.doPeek()
	if err != nil {
		return err
	}
	if k != want {
		return r.structuralf("expected %s but was %s", verb, k.kind())
	}
	r.peeked = peekNone
	return nil
}

// afterValue bumps the enclosing array's element index once a value (scalar
// or a just-closed container) has been fully consumed.
func (r *Reader) afterValue() {
	if top := r.top(); top.IsArray() {
		r.pathIndices[len(r.pathIndices)-1]++
	}
}

// BeginArray consumes a BEGIN_ARRAY token.
func (r *Reader) BeginArray() error {
	return r.expect(peekBeginArray, "BEGIN_ARRAY")
}

// EndArray consumes an END_ARRAY token.
func (r *Reader) EndArray() error {
	if err := r.expect(peekEndArray, "END_ARRAY"); err != nil {
		return err
	}
	r.pop()
	r.afterValue()
	return nil
}

// BeginObject consumes a BEGIN_OBJECT token.
func (r *Reader) BeginObject() error {
	return r.expect(peekBeginObject, "BEGIN_OBJECT")
}

// EndObject consumes an END_OBJECT token.
func (r *Reader) EndObject() error {
	if err := r.expect(peekEndObject, "END_OBJECT"); err != nil {
		return err
	}
	r.pop()
	r.afterValue()
	return nil
}

// NextName consumes a NAME token and returns the decoded property name.
func (r *Reader) NextName() (string, error) {
	if err := r.expect(peekName, "NAME"); err != nil {
		return "", err
	}
	s := r.peekedString
	r.hasPeekedString = false
	r.pathNames[len(r.pathNames)-1] = s
	return s, nil
}

// NextNull consumes a NULL token.
func (r *Reader) NextNull() error {
	if err := r.expect(peekNull, "NULL"); err != nil {
		return err
	}
	r.afterValue()
	return nil
}

// NextString consumes a scalar token and returns its string representation.
// It accepts STRING directly, and coerces NUMBER/LONG by rendering their
// decimal form.
func (r *Reader) NextString() (string, error) {
	k, err := r.doPeek()
	if err != nil {
		return "", err
	}
	var s string
	switch k {
	case peekString:
		s = r.peekedString
	case peekLong:
		s = strconv.FormatInt(r.peekedLong, 10)
	case peekNumber:
		s = r.peekedString
	default:
		return "", r.structuralf("expected STRING but was %s", k.kind())
	}
	r.peeked = peekNone
	r.hasPeekedString = false
	r.afterValue()
	return s, nil
}

// NextBoolean consumes a BOOLEAN token.
func (r *Reader) NextBoolean() (bool, error) {
	k, err := r.doPeek()
	if err != nil {
		return false, err
	}
	switch k {
	case peekTrue:
		r.peeked = peekNone
		r.afterValue()
		return true, nil
	case peekFalse:
		r.peeked = peekNone
		r.afterValue()
		return false, nil
	default:
		return false, r.structuralf("expected BOOLEAN but was %s", k.kind())
	}
}

// numericText returns the text of the current peeked scalar, if it can be
// interpreted as a number: the literal text for LONG/NUMBER, or the raw
// string for STRING (coercion).
func (r *Reader) numericText() (string, bool) {
	switch r.peeked {
	case peekLong:
		return strconv.FormatInt(r.peekedLong, 10), true
	case peekNumber:
		return r.peekedString, true
	case peekString:
		return r.peekedString, true
	default:
		return "", false
	}
}

// NextDouble consumes a numeric (or numeric-coercible string) token and
// returns it as a float64. In non-lenient mode NaN and ±Infinity are
// rejected.
func (r *Reader) NextDouble() (float64, error) {
	k, err := r.doPeek()
	if err != nil {
		return 0, err
	}
	text, ok := r.numericText()
	if !ok {
		return 0, r.structuralf("expected NUMBER but was %s", k.kind())
	}
	f, perr := strconv.ParseFloat(text, 64)
	if perr != nil {
		return 0, r.syntaxf("malformed number %q", text)
	}
	if !r.strictness.IsLenient() && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return 0, r.syntaxf("NaN and Infinity are not permitted in %s mode", r.strictness)
	}
	r.peeked = peekNone
	r.hasPeekedString = false
	r.afterValue()
	return f, nil
}

// NextLong consumes a numeric (or numeric-coercible string) token and
// returns it as an int64. A fast path is taken when the token is already a
// LONG; otherwise the text is parsed as an integer, falling back to a double
// parse that is rejected if it would lose precision.
func (r *Reader) NextLong() (int64, error) {
	k, err := r.doPeek()
	if err != nil {
		return 0, err
	}
	if k == peekLong {
		v := r.peekedLong
		r.peeked = peekNone
		r.afterValue()
		return v, nil
	}
	text, ok := r.numericText()
	if !ok {
		return 0, r.structuralf("expected NUMBER but was %s", k.kind())
	}
	if v, perr := strconv.ParseInt(text, 10, 64); perr == nil {
		r.peeked = peekNone
		r.hasPeekedString = false
		r.afterValue()
		return v, nil
	}
	f, perr := strconv.ParseFloat(text, 64)
	if perr != nil || f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) ||
		f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, r.syntaxf("number %q is not a long", text)
	}
	r.peeked = peekNone
	r.hasPeekedString = false
	r.afterValue()
	return int64(f), nil
}

// NextInt consumes a numeric token as NextLong does, additionally rejecting
// values outside the range of a 32-bit signed integer.
func (r *Reader) NextInt() (int32, error) {
	// NextLong consumes the token before the range check below, so a value
	// outside the int32 range is consumed even though an error is returned.
	v, err := r.NextLong()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, r.syntaxf("number %d does not fit in an int32", v)
	}
	return int32(v), nil
}

// PromoteNameToValue re-classifies the current NAME peek as a same-content
// STRING peek, without moving the cursor. It is meant for collaborators that
// decode a map's keys through the same accessor used for its values. It
// requires that the next token is currently NAME.
func (r *Reader) PromoteNameToValue() error {
	k, err := r.doPeek()
	if err != nil {
		return err
	}
	if k != peekName {
		return r.structuralf("cannot promote %s to a value", k.kind())
	}
	r.peeked = peekString
	return nil
}

// SkipValue consumes the next token, and if it begins a container, every
// token nested within it.
func (r *Reader) SkipValue() error {
	depth := 0
	for {
		k, err := r.doPeek()
		if err != nil {
			return err
		}
		switch k {
		case peekBeginArray, peekBeginObject:
			r.peeked = peekNone
			depth++
			continue
		case peekEndArray, peekEndObject:
			r.peeked = peekNone
			r.pop()
			r.afterValue()
			depth--
		case peekName:
			r.peeked = peekNone
			r.pathNames[len(r.pathNames)-1] = "<skipped>"
		case peekEndDocument:
			return nil
		default:
			r.peeked = peekNone
			r.hasPeekedString = false
			r.afterValue()
		}
		if depth <= 0 {
			return nil
		}
	}
}
