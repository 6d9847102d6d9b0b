package encoder

import (
	"errors"
	"fmt"
)

// Encoding failures. Every failed Encode returns a nil slice together with one
// of these (possibly wrapped); nothing is ever panicked.
var (
	// ErrMissingInput is returned when the route or the value is not supplied
	ErrMissingInput = errors.New("encoder: route or value missing")

	// ErrUnresolvedSchema is returned when no descriptor is registered for the route
	ErrUnresolvedSchema = errors.New("encoder: no schema for route")

	// ErrValidationFailed is returned when the value does not satisfy its descriptor
	ErrValidationFailed = errors.New("encoder: validation failed")

	// ErrInvalidValue is returned when a field value cannot be represented by its declared type
	ErrInvalidValue = errors.New("encoder: invalid field value")

	// ErrBufferTooSmall is returned when the output would exceed Config.MaxMessageSize
	ErrBufferTooSmall = errors.New("encoder: message exceeds maximum size")

	// ErrTooDeep is returned when messages nest deeper than Config.MaxDepth,
	// which also catches values that contain themselves
	ErrTooDeep = errors.New("encoder: message nested too deeply")

	// ErrEmptyMessage is returned when encoding wrote no bytes at all
	ErrEmptyMessage = errors.New("encoder: nothing to encode")
)

// ValidationError reports the first field that failed validation.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	// Path locates the message holding the field, e.g. "area.move.path[1]"
	Path   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("encoder: validation failed at %s: field %q: %s", e.Path, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
