package reader

import (
	"fmt"
	"strings"
)

// Path returns a JSONPath-style string (e.g. "$.a.b[2]") locating the next
// token the reader will produce.
func (r *Reader) Path() string {
	return r.path(false)
}

// PreviousPath returns the JSONPath to the token most recently consumed. It
// differs from Path only in the index of the deepest open array, which is
// decremented by one (the element just consumed).
func (r *Reader) PreviousPath() string {
	return r.path(true)
}

func (r *Reader) path(previous bool) string {
	var b strings.Builder
	b.WriteByte('$')
	last := len(r.stack) - 1
	for i, s := range r.stack {
		switch {
		case s.IsArray():
			idx := r.pathIndices[i]
			if previous && i == last && idx > 0 {
				idx--
			}
			fmt.Fprintf(&b, "[%d]", idx)
		case s.IsObject():
			if name := r.pathNames[i]; name != "" {
				b.WriteByte('.')
				b.WriteString(name)
			}
		}
	}
	return b.String()
}
