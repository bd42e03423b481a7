package writer

import (
	"math"
	"regexp"
	"strconv"
)

// jsonNumberGrammar matches the JSON number production: an optional sign,
// an integer part with no extraneous leading zero, an optional fraction,
// and an optional exponent.
var jsonNumberGrammar = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)

// ValueInt64 writes v as a JSON integer.
func (w *Writer) ValueInt64(v int64) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteString(strconv.FormatInt(v, 10)))
}

// ValueFloat64 writes v as a JSON number. In non-lenient mode NaN and
// ±Infinity are rejected with a structural error; in lenient mode they are
// written verbatim as the unquoted literals NaN/Infinity/-Infinity.
func (w *Writer) ValueFloat64(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if !w.strictness.IsLenient() {
			return w.structuralf("NaN and Infinity are not permitted in %s mode", w.strictness)
		}
		if err := w.beforeValue(); err != nil {
			return err
		}
		switch {
		case math.IsNaN(v):
			return w.ioErrorOf(w.sink.WriteString("NaN"))
		case math.IsInf(v, 1):
			return w.ioErrorOf(w.sink.WriteString("Infinity"))
		default:
			return w.ioErrorOf(w.sink.WriteString("-Infinity"))
		}
	}
	if err := w.beforeValue(); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteString(strconv.FormatFloat(v, 'g', -1, 64)))
}

// Number is any value whose String form already follows the JSON number
// grammar: -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?. *big.Int and
// *big.Float satisfy it; so does any caller type with a matching String
// method.
type Number interface {
	String() string
}

// ValueNumber writes an arbitrary-precision or caller-supplied numeric value
// verbatim, provided its String form matches the JSON number grammar.
func (w *Writer) ValueNumber(n Number) error {
	s := n.String()
	if !jsonNumberGrammar.MatchString(s) {
		return w.structuralf("value %q is not a valid JSON number", s)
	}
	if err := w.beforeValue(); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteString(s))
}

// ValueBool writes v as a JSON boolean.
func (w *Writer) ValueBool(v bool) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	if v {
		return w.ioErrorOf(w.sink.WriteString("true"))
	}
	return w.ioErrorOf(w.sink.WriteString("false"))
}
