// Package observability defines the hook through which msgcodec components
// report the operations they perform.
//
// Components accept an optional Observer and call it once per operation with
// an OperationContext. The metrics package ships an Observer that turns these
// notifications into Prometheus metrics; tests can plug in a recording observer.
package observability

import "time"

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the package reporting the operation (e.g. "encoder")
	Component string

	// Operation is the operation name (e.g. "encode", "decode")
	Operation string

	// Resource is the primary subject of the operation, such as a route
	Resource string

	// SubResource narrows Resource when relevant
	SubResource string

	// Duration is how long the operation took
	Duration time.Duration

	// Error is the failure, nil on success
	Error error

	// Size is the number of bytes produced or consumed
	Size int64

	// Metadata carries component specific details
	Metadata map[string]interface{}
}

// Observer receives operation notifications. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
