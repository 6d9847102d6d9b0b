// Package tracer provides OpenTelemetry tracing for msgcodec components.
//
// The encoder opens one span per EncodeContext call when a Tracer is attached;
// failures are recorded on the span.
//
// Basic Usage:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "gateway"}, log)
//	if err != nil {
//	    return err
//	}
//	defer t.Shutdown(context.Background())
//
//	ctx, span := t.StartSpan(ctx, "handle-request")
//	defer span.End()
//	t.SetAttributes(span, map[string]interface{}{"route": "area.move"})
package tracer
