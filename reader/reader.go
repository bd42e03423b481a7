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

// Package reader implements a pull-style, forward-only JSON tokenizer. A
// Reader never materializes a document tree: it hands back one token at a
// time from a Source, using a small nesting stack to know what is legal
// next.
package reader

import (
	"io"

	"github.com/go-jsonkit/jsontok/dialect"
	"github.com/go-jsonkit/jsontok/jsonerr"
	"github.com/go-jsonkit/jsontok/scope"
	"github.com/go-jsonkit/jsontok/token"
)

const (
	defaultNestingLimit      = 255
	defaultNumberBufferLimit = 1024
)

// Reader tokenizes a JSON document pulled from a Source.
type Reader struct {
	src  Source
	file *token.File
	line int // current 1-based line
	pos  token.Pos

	// one-rune pushback; scanners that overshoot by exactly one rune back up
	// into this instead of re-reading the Source.
	hasUnread  bool
	unreadRune rune
	unreadErr  error

	peeked          peekKind
	peekedLong      int64
	peekedString    string
	hasPeekedString bool

	stack       []scope.Scope
	pathNames   []string
	pathIndices []int

	strictness        dialect.Strictness
	nestingLimit      int
	numberBufferLimit int

	closed bool
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithStrictness sets the dialect the Reader accepts. The default is
// dialect.LegacyStrict.
func WithStrictness(s dialect.Strictness) Option {
	return func(r *Reader) { r.strictness = s }
}

// WithNestingLimit overrides the maximum number of simultaneously open
// arrays and objects. The default is 255.
func WithNestingLimit(n int) Option {
	return func(r *Reader) { r.nestingLimit = n }
}

// WithNumberBufferLimit overrides the maximum number of runes the number
// sub-state-machine accumulates for a single numeric literal before giving
// up on classifying it as a number at all. The default is 1024; in lenient
// mode, a literal past the limit is folded into an unquoted-literal scan
// instead, in strict/legacy-strict mode it is a syntax error.
func WithNumberBufferLimit(n int) Option {
	return func(r *Reader) { r.numberBufferLimit = n }
}

// New returns a new Reader pulling runes from src.
func New(src Source, opts ...Option) *Reader {
	r := &Reader{
		src:               src,
		file:              token.NewFile(""),
		line:              1,
		strictness:        dialect.LegacyStrict,
		nestingLimit:      defaultNestingLimit,
		numberBufferLimit: defaultNumberBufferLimit,
		stack:             []scope.Scope{scope.EmptyDocument},
		pathNames:         []string{""},
		pathIndices:       []int{0},
		peeked:            peekNone,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Reset rebinds r to a new Source and clears all state, so the Reader can be
// reused for a new document without reallocating its stacks.
func (r *Reader) Reset(src Source) {
	r.src = src
	r.file = token.NewFile("")
	r.line = 1
	r.pos = 0
	r.hasUnread = false
	r.peeked = peekNone
	r.hasPeekedString = false
	r.stack = append(r.stack[:0], scope.EmptyDocument)
	r.pathNames = append(r.pathNames[:0], "")
	r.pathIndices = append(r.pathIndices[:0], 0)
	r.closed = false
}

// Close releases the underlying Source. After Close, every operation on r
// fails with a structural error.
func (r *Reader) Close() error {
	r.top()
	r.stack[len(r.stack)-1] = scope.Closed
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *Reader) top() scope.Scope {
	return r.stack[len(r.stack)-1]
}

func (r *Reader) setTop(s scope.Scope) {
	r.stack[len(r.stack)-1] = s
}

func (r *Reader) push(s scope.Scope) error {
	if len(r.stack)-1 >= r.nestingLimit {
		return r.structuralf("nesting depth exceeds limit of %d", r.nestingLimit)
	}
	r.stack = append(r.stack, s)
	r.pathNames = append(r.pathNames, "")
	r.pathIndices = append(r.pathIndices, 0)
	return nil
}

func (r *Reader) pop() {
	r.stack = r.stack[:len(r.stack)-1]
	r.pathNames = r.pathNames[:len(r.pathNames)-1]
	r.pathIndices = r.pathIndices[:len(r.pathIndices)-1]
}

// next returns the next rune, or (0, io.EOF) at end of input.
func (r *Reader) next() (rune, error) {
	if r.hasUnread {
		r.hasUnread = false
		r.pos++
		if r.unreadRune == '\n' {
			r.line++ // undo backup's decrement; the line start is already recorded
		}
		return r.unreadRune, r.unreadErr
	}
	ru, err := r.src.ReadRune()
	if err != nil {
		return 0, err
	}
	r.pos++
	if ru == '\n' {
		r.line++
		r.file.AddLine(r.pos, r.line)
	}
	return ru, nil
}

// backup pushes back a single rune. It must not be called twice in a row
// without an intervening call to next.
func (r *Reader) backup(ru rune) {
	r.hasUnread = true
	r.unreadRune = ru
	r.unreadErr = nil
	r.pos--
	if ru == '\n' {
		r.line--
	}
}

func (r *Reader) location() jsonerr.Location {
	p := r.file.Position(r.pos)
	return jsonerr.Location{Line: p.Line, Column: p.Column, Path: r.path(false)}
}

func (r *Reader) syntaxf(format string, args ...interface{}) error {
	return jsonerr.Syntax(r.location(), format, args...)
}

func (r *Reader) structuralf(format string, args ...interface{}) error {
	return jsonerr.Structural(r.location(), format, args...)
}

func (r *Reader) ioError(err error) error {
	return jsonerr.IO(r.location(), err)
}
