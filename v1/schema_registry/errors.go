package schema_registry

import "errors"

var (
	// ErrNotFound is returned when the registry has no such schema or subject
	ErrNotFound = errors.New("schema registry: not found")

	// ErrUnexpectedStatus is returned for any other non-success HTTP status
	ErrUnexpectedStatus = errors.New("schema registry: unexpected status")

	// ErrInvalidFrame is returned when framed data lacks the magic byte and schema ID header
	ErrInvalidFrame = errors.New("schema registry: invalid frame")
)
