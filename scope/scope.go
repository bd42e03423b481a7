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

// Package scope defines the lexical scope vocabulary shared by the reader and
// writer packages. A scope is the state of a single level of nesting: which
// container (if any) is open at that level, and what may legally come next.
package scope

// Scope tags a single frame of the reader's or writer's nesting stack.
type Scope int

// The complete set of lexical scopes. Custom scopes are not supported; the
// stack in both reader.Reader and writer.Writer only ever holds these.
const (
	EmptyArray Scope = iota
	NonemptyArray
	EmptyObject
	DanglingName
	NonemptyObject
	EmptyDocument
	NonemptyDocument
	Closed
)

var names = [...]string{
	EmptyArray:       "EMPTY_ARRAY",
	NonemptyArray:    "NONEMPTY_ARRAY",
	EmptyObject:      "EMPTY_OBJECT",
	DanglingName:     "DANGLING_NAME",
	NonemptyObject:   "NONEMPTY_OBJECT",
	EmptyDocument:    "EMPTY_DOCUMENT",
	NonemptyDocument: "NONEMPTY_DOCUMENT",
	Closed:           "CLOSED",
}

// String returns the scope's canonical name, for diagnostics.
func (s Scope) String() string {
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "INVALID_SCOPE"
}

// IsArray reports whether s is one of the two array scopes.
func (s Scope) IsArray() bool {
	return s == EmptyArray || s == NonemptyArray
}

// IsObject reports whether s is one of the three object-related scopes
// (an empty object, a non-empty one, or one with a dangling name).
func (s Scope) IsObject() bool {
	return s == EmptyObject || s == NonemptyObject || s == DanglingName
}
