package wire

import "errors"

var (
	// ErrTruncated is returned when the input ends in the middle of a value.
	ErrTruncated = errors.New("wire: truncated data")

	// ErrOverflow is returned when a decoded varint does not fit the requested width.
	ErrOverflow = errors.New("wire: varint overflows target type")

	// ErrMalformed is returned when the input is not a valid varint.
	ErrMalformed = errors.New("wire: malformed varint")
)
