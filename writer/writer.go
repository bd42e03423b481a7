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

// Package writer implements a push-style JSON writer: a caller-driven scope
// machine that guarantees structural well-formedness and correct escaping at
// every emit. A Writer never buffers a document tree; every call emits
// directly (through internal buffering in the Sink) to the underlying sink.
package writer

import (
	"io"

	"github.com/go-jsonkit/jsontok/dialect"
	"github.com/go-jsonkit/jsontok/jsonerr"
	"github.com/go-jsonkit/jsontok/scope"
)

const defaultNestingLimit = 255

// Writer emits a well-formed JSON stream to a Sink.
type Writer struct {
	sink Sink

	stack []scope.Scope

	deferredName    string
	hasDeferredName bool

	indent  string
	newline string

	strictness     dialect.Strictness
	htmlSafe       bool
	serializeNulls bool
	nestingLimit   int

	closed bool
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithStrictness sets the dialect the Writer accepts/produces. The default is
// dialect.LegacyStrict.
func WithStrictness(s dialect.Strictness) Option {
	return func(w *Writer) { w.strictness = s }
}

// WithIndent sets the per-level indentation string. The empty string (the
// default) selects compact output with no inter-token whitespace.
func WithIndent(indent string) Option {
	return func(w *Writer) { w.indent = indent }
}

// WithNewline overrides the string written between indented elements. The
// default is "\n"; only meaningful when WithIndent is non-empty.
func WithNewline(newline string) Option {
	return func(w *Writer) { w.newline = newline }
}

// WithHTMLSafe enables escaping of '<', '>', '&', '=' and '\'' in emitted
// strings, so the output can be embedded in an HTML or XML document.
func WithHTMLSafe(on bool) Option {
	return func(w *Writer) { w.htmlSafe = on }
}

// WithSerializeNulls controls whether NullValue following a deferred object
// name actually emits the name/null pair, or is silently dropped. The
// default is true.
func WithSerializeNulls(on bool) Option {
	return func(w *Writer) { w.serializeNulls = on }
}

// WithNestingLimit overrides the maximum number of simultaneously open
// arrays and objects. The default is 255.
func WithNestingLimit(n int) Option {
	return func(w *Writer) { w.nestingLimit = n }
}

// New returns a new Writer emitting to sink.
func New(sink Sink, opts ...Option) *Writer {
	w := &Writer{
		sink:           sink,
		stack:          []scope.Scope{scope.EmptyDocument},
		newline:        "\n",
		strictness:     dialect.LegacyStrict,
		serializeNulls: true,
		nestingLimit:   defaultNestingLimit,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Reset rebinds w to a new Sink and clears all state, so the Writer can be
// reused for a new document without reallocating its stack.
func (w *Writer) Reset(sink Sink) {
	w.sink = sink
	w.stack = append(w.stack[:0], scope.EmptyDocument)
	w.deferredName = ""
	w.hasDeferredName = false
	w.closed = false
}

func (w *Writer) top() scope.Scope {
	return w.stack[len(w.stack)-1]
}

func (w *Writer) setTop(s scope.Scope) {
	w.stack[len(w.stack)-1] = s
}

func (w *Writer) push(s scope.Scope) error {
	if len(w.stack)-1 >= w.nestingLimit {
		return w.structuralf("nesting depth exceeds limit of %d", w.nestingLimit)
	}
	w.stack = append(w.stack, s)
	return nil
}

func (w *Writer) pop() {
	w.stack = w.stack[:len(w.stack)-1]
}

// separator is the string written between a name and its value.
func (w *Writer) separator() string {
	if w.indent == "" {
		return ":"
	}
	return ": "
}

func (w *Writer) writeIndent() error {
	if w.indent == "" {
		return nil
	}
	if err := w.sink.WriteString(w.newline); err != nil {
		return w.ioError(err)
	}
	for i := 1; i < len(w.stack); i++ {
		if err := w.sink.WriteString(w.indent); err != nil {
			return w.ioError(err)
		}
	}
	return nil
}

// beforeValue performs the scope transition and separator/indent emission
// that must happen before any scalar or container value is written.
func (w *Writer) beforeValue() error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	if err := w.flushDeferredName(); err != nil {
		return err
	}
	switch top := w.top(); top {
	case scope.EmptyDocument:
		w.setTop(scope.NonemptyDocument)
	case scope.NonemptyDocument:
		if !w.strictness.IsLenient() {
			return w.structuralf("a document must contain a single top-level value")
		}
		// separate adjacent top-level values so e.g. two numbers don't run
		// together into one token.
		sep := " "
		if w.indent != "" {
			sep = w.newline
		}
		if err := w.sink.WriteString(sep); err != nil {
			return w.ioError(err)
		}
	case scope.EmptyArray:
		w.setTop(scope.NonemptyArray)
		if err := w.writeIndent(); err != nil {
			return err
		}
	case scope.NonemptyArray:
		if err := w.sink.WriteString(","); err != nil {
			return w.ioError(err)
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
	case scope.DanglingName:
		if err := w.sink.WriteString(w.separator()); err != nil {
			return w.ioError(err)
		}
		w.setTop(scope.NonemptyObject)
	default:
		return w.structuralf("cannot write a value in %s scope", top)
	}
	return nil
}

// flushDeferredName emits a pending Name call's comma/indent/quoted-name,
// leaving the top scope at DANGLING_NAME ready for beforeValue's separator.
func (w *Writer) flushDeferredName() error {
	if !w.hasDeferredName {
		return nil
	}
	name := w.deferredName
	w.deferredName = ""
	w.hasDeferredName = false
	return w.writeName(name)
}

func (w *Writer) writeName(name string) error {
	switch top := w.top(); top {
	case scope.EmptyObject:
		w.setTop(scope.DanglingName)
		if err := w.writeIndent(); err != nil {
			return err
		}
	case scope.NonemptyObject:
		if err := w.sink.WriteString(","); err != nil {
			return w.ioError(err)
		}
		w.setTop(scope.DanglingName)
		if err := w.writeIndent(); err != nil {
			return err
		}
	default:
		return w.structuralf("Name called outside an object (in %s scope)", top)
	}
	return w.writeEscapedString(name)
}

// Name stashes a property name to be emitted before the next Value*/Begin*
// call. It must be called while the top scope is an object scope.
func (w *Writer) Name(name string) error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	if w.hasDeferredName {
		return w.structuralf("Name called twice with no intervening value")
	}
	if top := w.top(); top != scope.EmptyObject && top != scope.NonemptyObject {
		return w.structuralf("Name called outside an object (in %s scope)", top)
	}
	w.deferredName = name
	w.hasDeferredName = true
	return nil
}

// BeginArray opens a new array.
func (w *Writer) BeginArray() error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	if err := w.push(scope.EmptyArray); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteRune('['))
}

// EndArray closes the innermost open array.
func (w *Writer) EndArray() error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	top := w.top()
	if top != scope.EmptyArray && top != scope.NonemptyArray {
		return w.structuralf("EndArray called in %s scope", top)
	}
	nonEmpty := top == scope.NonemptyArray
	w.pop()
	if nonEmpty {
		if err := w.writeIndent(); err != nil {
			return err
		}
	}
	return w.ioErrorOf(w.sink.WriteRune(']'))
}

// BeginObject opens a new object.
func (w *Writer) BeginObject() error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	if err := w.push(scope.EmptyObject); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteRune('{'))
}

// EndObject closes the innermost open object.
func (w *Writer) EndObject() error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	if w.hasDeferredName {
		return w.structuralf("EndObject called with a pending Name")
	}
	top := w.top()
	if top != scope.EmptyObject && top != scope.NonemptyObject {
		return w.structuralf("EndObject called in %s scope", top)
	}
	nonEmpty := top == scope.NonemptyObject
	w.pop()
	if nonEmpty {
		if err := w.writeIndent(); err != nil {
			return err
		}
	}
	return w.ioErrorOf(w.sink.WriteRune('}'))
}

// NullValue writes a JSON null, unless it immediately follows a deferred
// object name and WithSerializeNulls(false) is in effect, in which case the
// name/null pair is silently dropped.
func (w *Writer) NullValue() error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	if w.hasDeferredName && !w.serializeNulls {
		w.deferredName = ""
		w.hasDeferredName = false
		return nil
	}
	if err := w.beforeValue(); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteString("null"))
}

// JSONValue writes raw, assumed-already-valid JSON verbatim as the next
// value, without any validation or re-escaping.
func (w *Writer) JSONValue(raw string) error {
	if err := w.beforeValue(); err != nil {
		return err
	}
	return w.ioErrorOf(w.sink.WriteString(raw))
}

// Flush flushes any buffering performed by the underlying Sink.
func (w *Writer) Flush() error {
	if w.closed {
		return w.structuralf("writer is closed")
	}
	return w.ioErrorOf(w.sink.Flush())
}

// Close flushes the Sink and, if it implements io.Closer, closes it. The
// document must be complete (the stack must hold exactly one
// NONEMPTY_DOCUMENT scope); otherwise Close fails with a structural error
// and the writer is left closed regardless.
func (w *Writer) Close() error {
	defer func() { w.closed = true }()
	flushErr := w.sink.Flush()
	var closeErr error
	if c, ok := w.sink.(io.Closer); ok {
		closeErr = c.Close()
	}
	if len(w.stack) != 1 || w.top() != scope.NonemptyDocument {
		return w.structuralf("incomplete document at Close")
	}
	if flushErr != nil {
		return w.ioError(flushErr)
	}
	return w.ioErrorOf(closeErr)
}

func (w *Writer) structuralf(format string, args ...interface{}) error {
	return jsonerr.Structural(jsonerr.Location{}, format, args...)
}

func (w *Writer) ioError(err error) error {
	return jsonerr.IO(jsonerr.Location{}, err)
}

func (w *Writer) ioErrorOf(err error) error {
	if err == nil {
		return nil
	}
	return w.ioError(err)
}
