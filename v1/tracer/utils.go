package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// StartSpan creates a span named name as a child of any span in ctx.
// The returned span must be ended by the caller.
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	return t.provider.Tracer(instrumentationName).Start(ctx, name)
}

// RecordErrorOnSpan records err on span and marks the span as failed.
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attributes to span. Values of unsupported types are
// recorded through fmt.Sprint.
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for key, value := range attrs {
		switch v := value.(type) {
		case string:
			kv = append(kv, attribute.String(key, v))
		case int:
			kv = append(kv, attribute.Int(key, v))
		case int64:
			kv = append(kv, attribute.Int64(key, v))
		case float64:
			kv = append(kv, attribute.Float64(key, v))
		case bool:
			kv = append(kv, attribute.Bool(key, v))
		default:
			kv = append(kv, attribute.String(key, fmt.Sprint(v)))
		}
	}
	span.SetAttributes(kv...)
}
