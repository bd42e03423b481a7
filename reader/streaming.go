package reader

import (
	"io"
	"strings"
)

// StringValueReader returns a reader over the next token's decoded string
// content. It is an optional capability alongside NextString: it calls
// NextString, so the whole value is decoded into memory before it returns,
// it accepts the same tokens NextString accepts (NUMBER included), and the
// Reader is already positioned past the value when it returns. It does not
// decode the value incrementally.
func (r *Reader) StringValueReader() (io.RuneReader, error) {
	s, err := r.NextString()
	if err != nil {
		return nil, err
	}
	return strings.NewReader(s), nil
}
