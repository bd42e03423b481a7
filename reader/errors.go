package reader

import "errors"

var (
	errInvalidEncoding = errors.New("invalid UTF-8 encoding")
	errMisplacedBOM    = errors.New("invalid BOM in the middle of the input")
)
