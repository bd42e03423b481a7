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

// Package dialect defines the strictness levels shared by package reader and
// package writer, controlling which deviations from RFC 8259 are accepted or
// produced.
package dialect

// Strictness selects a JSON dialect.
type Strictness int

const (
	// Strict accepts and produces only RFC 8259 JSON.
	Strict Strictness = iota
	// LegacyStrict is the default. It accepts mixed-case keywords, the \'
	// escape, backslash-newline inside strings, and unescaped C0 control
	// characters in strings, but otherwise behaves like Strict.
	LegacyStrict
	// Lenient accepts a wide range of non-standard JSON: comments, a
	// non-execute prefix, unquoted and single-quoted names and strings,
	// trailing/extra separators, NaN and Infinity, and '=' or '=>' in place
	// of ':'.
	Lenient
)

// String returns the dialect's canonical name.
func (s Strictness) String() string {
	switch s {
	case Strict:
		return "strict"
	case LegacyStrict:
		return "legacy-strict"
	case Lenient:
		return "lenient"
	default:
		return "invalid-strictness"
	}
}

// AtLeastLegacy reports whether s accepts the LegacyStrict relaxations
// (true for LegacyStrict and Lenient).
func (s Strictness) AtLeastLegacy() bool {
	return s >= LegacyStrict
}

// IsLenient reports whether s is the Lenient dialect.
func (s Strictness) IsLenient() bool {
	return s == Lenient
}
