package schema

import "errors"

var (
	// ErrInvalidTag is returned when a field tag is outside 1..2^29-1
	ErrInvalidTag = errors.New("schema: invalid field tag")

	// ErrDuplicateField is returned when a message declares a field name or tag twice
	ErrDuplicateField = errors.New("schema: duplicate field")

	// ErrInvalidDescriptor is returned for nil or unnamed descriptors
	ErrInvalidDescriptor = errors.New("schema: invalid descriptor")

	// ErrInvalidDocument is returned when a schema document cannot be parsed
	ErrInvalidDocument = errors.New("schema: invalid document")
)
