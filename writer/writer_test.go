package writer_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/go-jsonkit/jsontok/dialect"
	"github.com/go-jsonkit/jsontok/writer"
)

func newWriter(opts ...writer.Option) (*writer.Writer, *strings.Builder) {
	var sb strings.Builder
	return writer.New(writer.NewSinkFromWriter(&sb), opts...), &sb
}

func TestBasicObjectCompact(t *testing.T) {
	w, sb := newWriter()
	mustErr(t, w.BeginObject())
	mustErr(t, w.Name("a"))
	mustErr(t, w.ValueInt64(1))
	mustErr(t, w.Name("b"))
	mustErr(t, w.BeginArray())
	mustErr(t, w.ValueBool(true))
	mustErr(t, w.ValueBool(false))
	mustErr(t, w.NullValue())
	mustErr(t, w.EndArray())
	mustErr(t, w.Name("c"))
	mustErr(t, w.ValueString("x"))
	mustErr(t, w.EndObject())
	mustErr(t, w.Close())

	want := `{"a":1,"b":[true,false,null],"c":"x"}`
	if got := sb.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHTMLSafeEscaping(t *testing.T) {
	w, sb := newWriter(writer.WithHTMLSafe(true))
	mustErr(t, w.BeginObject())
	mustErr(t, w.Name("k"))
	mustErr(t, w.ValueString("</x>"))
	mustErr(t, w.EndObject())
	mustErr(t, w.Close())

	want := "{\"k\":\"\\u003c/x\\u003e\"}"
	if got := sb.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLineSeparatorAlwaysEscaped(t *testing.T) {
	w, sb := newWriter()
	mustErr(t, w.ValueString("a b"))
	mustErr(t, w.Close())
	want := "\"a\\u2028b\""
	if got := sb.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNaNRejectedStrict(t *testing.T) {
	w, _ := newWriter(writer.WithStrictness(dialect.Strict))
	mustErr(t, w.BeginArray())
	if err := w.ValueFloat64(math.NaN()); err == nil {
		t.Fatal("expected error for NaN in strict mode")
	}
}

func TestNaNAllowedLenient(t *testing.T) {
	w, sb := newWriter(writer.WithStrictness(dialect.Lenient))
	mustErr(t, w.BeginArray())
	mustErr(t, w.ValueFloat64(math.NaN()))
	mustErr(t, w.EndArray())
	mustErr(t, w.Close())
	if got, want := sb.String(), `[NaN]`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNullSuppressedWhenSerializeNullsOff(t *testing.T) {
	w, sb := newWriter(writer.WithSerializeNulls(false))
	mustErr(t, w.BeginObject())
	mustErr(t, w.Name("a"))
	mustErr(t, w.NullValue())
	mustErr(t, w.Name("b"))
	mustErr(t, w.ValueInt64(1))
	mustErr(t, w.EndObject())
	mustErr(t, w.Close())
	if got, want := sb.String(), `{"b":1}`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIndentedOutput(t *testing.T) {
	w, sb := newWriter(writer.WithIndent("  "))
	mustErr(t, w.BeginArray())
	mustErr(t, w.ValueInt64(1))
	mustErr(t, w.ValueInt64(2))
	mustErr(t, w.EndArray())
	mustErr(t, w.Close())
	want := "[\n  1,\n  2\n]"
	if got := sb.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestValueNumberAcceptsBigInt(t *testing.T) {
	w, sb := newWriter()
	mustErr(t, w.ValueNumber(big.NewInt(123456789012345)))
	mustErr(t, w.Close())
	if got, want := sb.String(), "123456789012345"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestValueNumberRejectsNonJSONForm(t *testing.T) {
	w, _ := newWriter()
	if err := w.ValueNumber(fakeNumber("not-a-number")); err == nil {
		t.Fatal("expected error")
	}
}

type fakeNumber string

func (f fakeNumber) String() string { return string(f) }

func TestEndObjectWithPendingNameFails(t *testing.T) {
	w, _ := newWriter()
	mustErr(t, w.BeginObject())
	mustErr(t, w.Name("a"))
	if err := w.EndObject(); err == nil {
		t.Fatal("expected error")
	}
}

func TestCloseIncompleteDocumentFails(t *testing.T) {
	w, _ := newWriter()
	mustErr(t, w.BeginArray())
	if err := w.Close(); err == nil {
		t.Fatal("expected error for incomplete document")
	}
}

func TestOperationsFailAfterClose(t *testing.T) {
	w, _ := newWriter()
	mustErr(t, w.ValueInt64(1))
	mustErr(t, w.Close())
	if err := w.ValueInt64(2); err == nil {
		t.Fatal("expected error writing after Close")
	}
}

func mustErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
