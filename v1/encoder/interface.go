package encoder

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Encoder turns structured values into the msgcodec binary format using the
// message descriptor registered for a route.
//
// This interface is implemented by the concrete *EncoderClient type.
type Encoder interface {
	// Encode validates value against the descriptor of route and returns its
	// encoding. On failure the slice is nil and the error says why.
	Encode(route string, value any) ([]byte, error)

	// EncodeContext is Encode with tracing: a span is opened as a child of ctx
	// when a tracer is attached.
	EncodeContext(ctx context.Context, route string, value any) ([]byte, error)

	// EncodeBatch encodes every request concurrently. The result is index
	// aligned with reqs; the first failure aborts the batch.
	EncodeBatch(ctx context.Context, reqs []Request) ([][]byte, error)

	// Validate checks value against the descriptor of route without encoding.
	Validate(route string, value any) error

	// Stats returns counters accumulated since the encoder was created.
	Stats() Stats
}

// Request is one item of a batch.
type Request struct {
	Route string
	Value any
}

// Stats are cumulative encoder counters.
type Stats struct {
	Encoded int64
	Failed  int64

	// UnresolvedNested counts fields skipped because their message type
	// could not be resolved locally or globally.
	UnresolvedNested int64
}

// Tracer is the subset of *tracer.Tracer the encoder uses.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
}
