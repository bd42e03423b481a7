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

// Command jsontokfmt reads a JSON document (in any supported dialect) and
// re-emits it through the writer, normalizing whitespace and optionally
// re-indenting it. It exercises the reader and writer purely as library
// consumers, the way package parser consumes package lex in the teacher
// lineage this module descends from.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-jsonkit/jsontok/dialect"
	"github.com/go-jsonkit/jsontok/jsonerr"
	"github.com/go-jsonkit/jsontok/reader"
	"github.com/go-jsonkit/jsontok/token"
	"github.com/go-jsonkit/jsontok/writer"
)

func main() {
	indent := flag.Int("indent", 0, "number of spaces to indent; 0 for compact output")
	dialectName := flag.String("dialect", "legacy", "input/output dialect: strict, legacy or lenient")
	htmlSafe := flag.Bool("html-safe", false, "escape '<', '>', '&', '=' and '\\'' in output strings")
	flag.Parse()

	d, err := parseDialect(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsontokfmt:", err)
		os.Exit(2)
	}

	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "jsontokfmt:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jsontokfmt:", err)
		os.Exit(1)
	}

	if err := run(data, os.Stdout, d, *indent, *htmlSafe); err != nil {
		fmt.Fprintln(os.Stderr, "jsontokfmt:", err)
		if located, ok := err.(jsonerr.Located); ok {
			if snippet := renderSnippet(data, located.Location()); snippet != "" {
				fmt.Fprintln(os.Stderr, snippet)
			}
		}
		os.Exit(1)
	}
}

// renderSnippet extracts the source line named by loc out of data and
// returns a caret-aligned jsonerr.Snippet for it, or "" if loc does not
// point at an existing line (e.g. a structural error with a zero Location).
func renderSnippet(data []byte, loc jsonerr.Location) string {
	if loc.Line <= 0 {
		return ""
	}
	lines := strings.Split(string(data), "\n")
	if loc.Line > len(lines) {
		return ""
	}
	return jsonerr.Snippet(lines[loc.Line-1], loc)
}

func parseDialect(name string) (dialect.Strictness, error) {
	switch name {
	case "strict":
		return dialect.Strict, nil
	case "legacy":
		return dialect.LegacyStrict, nil
	case "lenient":
		return dialect.Lenient, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want strict, legacy or lenient)", name)
	}
}

func run(data []byte, out io.Writer, d dialect.Strictness, indentWidth int, htmlSafe bool) error {
	r := reader.New(reader.NewSourceFromReader(bytes.NewReader(data)), reader.WithStrictness(d))

	wopts := []writer.Option{writer.WithStrictness(d), writer.WithHTMLSafe(htmlSafe)}
	if indentWidth > 0 {
		wopts = append(wopts, writer.WithIndent(spaces(indentWidth)))
	}
	w := writer.New(writer.NewSinkFromWriter(out), wopts...)

	if err := copyDocument(r, w); err != nil {
		return err
	}
	if err := r.Close(); err != nil {
		return err
	}
	return w.Close()
}

// copyDocument pulls every token from r and replays it through w.
func copyDocument(r *reader.Reader, w *writer.Writer) error {
	for {
		kind, err := r.Peek()
		if err != nil {
			return err
		}
		switch kind {
		case token.EndDocument:
			return nil
		case token.BeginArray:
			if err := r.BeginArray(); err != nil {
				return err
			}
			if err := w.BeginArray(); err != nil {
				return err
			}
		case token.EndArray:
			if err := r.EndArray(); err != nil {
				return err
			}
			if err := w.EndArray(); err != nil {
				return err
			}
		case token.BeginObject:
			if err := r.BeginObject(); err != nil {
				return err
			}
			if err := w.BeginObject(); err != nil {
				return err
			}
		case token.EndObject:
			if err := r.EndObject(); err != nil {
				return err
			}
			if err := w.EndObject(); err != nil {
				return err
			}
		case token.Name:
			name, err := r.NextName()
			if err != nil {
				return err
			}
			if err := w.Name(name); err != nil {
				return err
			}
		case token.String:
			s, err := r.NextString()
			if err != nil {
				return err
			}
			if err := w.ValueString(s); err != nil {
				return err
			}
		case token.Boolean:
			b, err := r.NextBoolean()
			if err != nil {
				return err
			}
			if err := w.ValueBool(b); err != nil {
				return err
			}
		case token.Null:
			if err := r.NextNull(); err != nil {
				return err
			}
			if err := w.NullValue(); err != nil {
				return err
			}
		case token.Number:
			// NextString renders the LONG/NUMBER literal's exact decimal
			// text; writing it back via JSONValue avoids a lossy float64
			// round trip for large integers.
			s, err := r.NextString()
			if err != nil {
				return err
			}
			if err := w.JSONValue(s); err != nil {
				return err
			}
		}
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
