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

package writer

import (
	"bufio"
	"io"
)

// Sink is the push-style character destination a Writer emits to: single
// runes or whole strings, plus a Flush signal. It has no separate method for
// rune slices. Sinks are forward-only, mirroring reader.Source.
type Sink interface {
	WriteRune(r rune) error
	WriteString(s string) error
	Flush() error
}

// bufSink adapts an io.Writer into a Sink via a bufio.Writer.
type bufSink struct {
	w *bufio.Writer
}

// NewSinkFromWriter returns the stock Sink adapter over w.
func NewSinkFromWriter(w io.Writer) Sink {
	return &bufSink{w: bufio.NewWriter(w)}
}

func (s *bufSink) WriteRune(r rune) error {
	_, err := s.w.WriteRune(r)
	return err
}

func (s *bufSink) WriteString(str string) error {
	_, err := s.w.WriteString(str)
	return err
}

func (s *bufSink) Flush() error {
	return s.w.Flush()
}
