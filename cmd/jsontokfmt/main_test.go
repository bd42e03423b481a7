package main

import (
	"strings"
	"testing"

	"github.com/go-jsonkit/jsontok/dialect"
	"github.com/go-jsonkit/jsontok/jsonerr"
)

func TestRunReformatsCompact(t *testing.T) {
	in := []byte(`{ "a" : 1 , "b" : [ true, false ] }`)
	var out strings.Builder
	if err := run(in, &out, dialect.LegacyStrict, 0, false); err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[true,false]}`
	if got := out.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunReformatsIndented(t *testing.T) {
	in := []byte(`[1,2]`)
	var out strings.Builder
	if err := run(in, &out, dialect.LegacyStrict, 2, false); err != nil {
		t.Fatal(err)
	}
	want := "[\n  1,\n  2\n]"
	if got := out.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunLenientNonExecutePrefix(t *testing.T) {
	in := []byte(")]}'\n[1]")
	var out strings.Builder
	if err := run(in, &out, dialect.Lenient, 0, false); err != nil {
		t.Fatal(err)
	}
	want := `[1]`
	if got := out.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunStrictRejectsComments(t *testing.T) {
	in := []byte("// oops\n1")
	var out strings.Builder
	if err := run(in, &out, dialect.Strict, 0, false); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunErrorIsLocated(t *testing.T) {
	in := []byte("{\n  \"a\": ,\n}")
	var out strings.Builder
	err := run(in, &out, dialect.Strict, 0, false)
	if err == nil {
		t.Fatal("expected error")
	}
	located, ok := err.(jsonerr.Located)
	if !ok {
		t.Fatalf("error %T does not implement jsonerr.Located", err)
	}
	if loc := located.Location(); loc.Line != 2 {
		t.Fatalf("Location().Line = %d, want 2", loc.Line)
	}
}

func TestRenderSnippetPointsAtColumn(t *testing.T) {
	in := []byte("{\n  \"a\": ,\n}")
	err := run(in, &strings.Builder{}, dialect.Strict, 0, false)
	located, ok := err.(jsonerr.Located)
	if !ok {
		t.Fatalf("error %T does not implement jsonerr.Located", err)
	}
	snippet := renderSnippet(in, located.Location())
	if !strings.Contains(snippet, "  \"a\": ,") {
		t.Fatalf("snippet = %q, missing offending line", snippet)
	}
	if !strings.Contains(snippet, "^") {
		t.Fatalf("snippet = %q, missing caret", snippet)
	}
}

func TestRenderSnippetEmptyForZeroLocation(t *testing.T) {
	if got := renderSnippet([]byte("1"), jsonerr.Location{}); got != "" {
		t.Fatalf("renderSnippet = %q, want empty for zero Location", got)
	}
}
