package decoder

import "errors"

var (
	// ErrMissingInput is returned when the route or the data is empty
	ErrMissingInput = errors.New("decoder: route or data missing")

	// ErrUnresolvedSchema is returned when no descriptor is registered for the route
	ErrUnresolvedSchema = errors.New("decoder: no schema for route")

	// ErrMalformed is returned when the data does not match the descriptor
	ErrMalformed = errors.New("decoder: malformed message")

	// ErrMissingRequired is returned when a required field is not in the data
	ErrMissingRequired = errors.New("decoder: required field missing")

	// ErrTooDeep is returned when nesting exceeds Config.MaxDepth
	ErrTooDeep = errors.New("decoder: message nested too deeply")
)
