package jsonerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-jsonkit/jsontok/jsonerr"
)

func TestLocationStringWithoutPath(t *testing.T) {
	loc := jsonerr.Location{Line: 3, Column: 5}
	want := "line 3 column 5"
	if got := loc.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocationStringWithPath(t *testing.T) {
	loc := jsonerr.Location{Line: 3, Column: 5, Path: "$.a[1]"}
	want := "line 3 column 5 path $.a[1]"
	if got := loc.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSyntaxErrorFormatsMessageAndLocation(t *testing.T) {
	loc := jsonerr.Location{Line: 1, Column: 2}
	err := jsonerr.Syntax(loc, "unexpected character %q", ',')
	want := "unexpected character ',' at line 1 column 2"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := err.Location(); got != loc {
		t.Fatalf("Location() = %+v, want %+v", got, loc)
	}
}

func TestStructuralErrorFormatsMessageAndLocation(t *testing.T) {
	loc := jsonerr.Location{Line: 4, Column: 1}
	err := jsonerr.Structural(loc, "reader is closed")
	want := "reader is closed at line 4 column 1"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := err.Location(); got != loc {
		t.Fatalf("Location() = %+v, want %+v", got, loc)
	}
}

func TestIOErrorWrapsAndUnwraps(t *testing.T) {
	inner := errors.New("disk on fire")
	loc := jsonerr.Location{Line: 1, Column: 1}
	err := jsonerr.IO(loc, inner)
	if !errors.Is(err, inner) {
		t.Fatal("expected errors.Is to find the wrapped error")
	}
	if got := err.Location(); got != loc {
		t.Fatalf("Location() = %+v, want %+v", got, loc)
	}
}

func TestLocatedInterfaceCoversAllThreeKinds(t *testing.T) {
	loc := jsonerr.Location{Line: 7, Column: 9}
	errs := []error{
		jsonerr.Syntax(loc, "x"),
		jsonerr.Structural(loc, "x"),
		jsonerr.IO(loc, errors.New("x")),
	}
	for _, err := range errs {
		located, ok := err.(jsonerr.Located)
		if !ok {
			t.Fatalf("%T does not implement jsonerr.Located", err)
		}
		if got := located.Location(); got != loc {
			t.Fatalf("%T.Location() = %+v, want %+v", err, got, loc)
		}
	}
}

func TestSnippetCaretUnderAsciiColumn(t *testing.T) {
	line := `  "a": ,`
	loc := jsonerr.Location{Line: 1, Column: 8}
	got := jsonerr.Snippet(line, loc)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), got)
	}
	if lines[0] != line {
		t.Fatalf("first line = %q, want %q", lines[0], line)
	}
	caretCol := strings.IndexByte(lines[1], '^')
	if caretCol != loc.Column-1 {
		t.Fatalf("caret at column %d, want %d", caretCol, loc.Column-1)
	}
}

func TestSnippetWidensCaretForFullwidthRunes(t *testing.T) {
	// each fullwidth rune occupies two terminal cells, so the caret must
	// land 4 cells in once past two of them, not 2.
	line := "「あ,"
	loc := jsonerr.Location{Column: len("「あ") + 1}
	got := jsonerr.Snippet(line, loc)
	lines := strings.Split(got, "\n")
	caretCol := strings.IndexByte(lines[1], '^')
	if caretCol != 4 {
		t.Fatalf("caret at column %d, want 4 (two fullwidth runes wide)", caretCol)
	}
}

func TestSnippetClampsColumnPastEndOfLine(t *testing.T) {
	line := "abc"
	loc := jsonerr.Location{Line: 1, Column: 100}
	got := jsonerr.Snippet(line, loc)
	if !strings.HasPrefix(got, line+"\n") {
		t.Fatalf("got %q, want prefix %q", got, line+"\n")
	}
}
