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

package reader

import (
	"io"
	"unicode/utf8"
)

// Source is the pull-style character source a Reader scans. ReadRune returns
// the next decoded rune, or an error (io.EOF at end of input). Sources are
// forward-only: there is no Seek or mark/reset, mirroring the Reader itself.
type Source interface {
	ReadRune() (rune, error)
}

// bufSize is the size of the byte buffer backing a Reader's default Source.
// It is large enough that the vast majority of number and short-string
// literals fully fit in one fill.
const bufSize = 4 << 10

// byteSource adapts an io.Reader into a Source, decoding UTF-8 and folding a
// single leading byte-order mark into nothing. This is the same buffer-fill
// and rune-decode technique used by hand-rolled DFA lexers: read a chunk into
// a fixed buffer, decode whole runes out of it, and slide the remainder down
// on refill.
type byteSource struct {
	r      io.Reader
	buf    [bufSize]byte
	rd, wr int // read/write indices into buf
	err    error
	first  bool // true until the first rune has been returned
}

// NewSourceFromReader returns the stock Source adapter over r.
func NewSourceFromReader(r io.Reader) Source {
	return &byteSource{r: r, first: true}
}

func (s *byteSource) fill() {
	if s.rd > 0 {
		copy(s.buf[:], s.buf[s.rd:s.wr])
		s.wr -= s.rd
		s.rd = 0
	}
	for i := 0; i < 100; i++ {
		n, err := s.r.Read(s.buf[s.wr:])
		s.wr += n
		if n > 0 || err != nil {
			if err != nil {
				s.err = err
			}
			return
		}
	}
	s.err = io.ErrNoProgress
}

func (s *byteSource) ReadRune() (rune, error) {
	for s.wr-s.rd < utf8.UTFMax && !utf8.FullRune(s.buf[s.rd:s.wr]) && s.err == nil {
		s.fill()
	}
	if s.rd == s.wr {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}
	r, w := utf8.DecodeRune(s.buf[s.rd:s.wr])
	if r == utf8.RuneError && w <= 1 {
		s.rd++
		return 0, errInvalidEncoding
	}
	s.rd += w
	if r == bomRune {
		if !s.first {
			return 0, errMisplacedBOM
		}
		s.first = false
		return s.ReadRune()
	}
	s.first = false
	return r, nil
}

const bomRune = 0xfeff
