// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package jsonerr defines the error taxonomy shared by package reader and
// package writer: malformed-input (syntax) errors, structural-misuse errors,
// and wrapped I/O errors, all uniformly located and formatted.
package jsonerr

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Location pinpoints where an error occurred: a line and column (both
// 1-based) and, if the reader or writer was tracking one, a JSONPath.
type Location struct {
	Line   int
	Column int
	Path   string
}

func (l Location) String() string {
	if l.Path == "" {
		return fmt.Sprintf("line %d column %d", l.Line, l.Column)
	}
	return fmt.Sprintf("line %d column %d path %s", l.Line, l.Column, l.Path)
}

// SyntaxError reports malformed input: a character the grammar does not
// allow at the current position, an unterminated string, a bad escape, and
// so on.
type SyntaxError struct {
	Msg string
	Loc Location
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Loc)
}

// Location returns the position the error occurred at.
func (e *SyntaxError) Location() Location { return e.Loc }

// StructuralError reports misuse of the reader or writer's state machine:
// calling EndArray inside an object, writing a value where a name is
// expected, operating on a closed instance, exceeding the nesting limit, and
// so on.
type StructuralError struct {
	Msg string
	Loc Location
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Loc)
}

// Location returns the position the error occurred at.
func (e *StructuralError) Location() Location { return e.Loc }

// IOError wraps an error returned by the underlying Source or Sink.
type IOError struct {
	Err error
	Loc Location
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error: %s at %s", e.Err, e.Loc)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Location returns the position the error occurred at.
func (e *IOError) Location() Location { return e.Loc }

// Located is implemented by every error type in this package. Callers that
// want to print a source snippet (see Snippet) type-assert to it instead of
// switching on the three concrete error types.
type Located interface {
	error
	Location() Location
}

// Syntax builds a *SyntaxError at the given location.
func Syntax(loc Location, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Loc: loc}
}

// Structural builds a *StructuralError at the given location.
func Structural(loc Location, format string, args ...interface{}) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...), Loc: loc}
}

// IO wraps err as an *IOError at the given location.
func IO(loc Location, err error) *IOError {
	return &IOError{Err: err, Loc: loc}
}

// Snippet renders a two-line, caret-aligned excerpt of src's line containing
// loc: the line itself, then a line with a caret under the offending column.
// Caret alignment accounts for East-Asian wide/fullwidth runes occupying two
// terminal cells, the same technique a monospaced-terminal error reporter
// needs for any non-ASCII source line.
func Snippet(line string, loc Location) string {
	b := loc.Column - 1
	if b < 0 {
		b = 0
	}
	// clamp to a valid rune boundary no further than len(line)
	if b > len(line) {
		b = len(line)
	}
	for b > 0 && b < len(line) && !utf8.RuneStart(line[b]) {
		b--
	}
	w := displayWidth(line[:b])
	return fmt.Sprintf("%s\n%*c^", line, w, ' ')
}

// displayWidth computes the width in terminal cells of s, assuming a
// monospaced font and a UTF-8 locale.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		case width.EastAsianAmbiguous:
			w++ // ambiguous: 2 cells under a CJK locale, 1 otherwise
		default:
			w++
		}
	}
	return w
}
