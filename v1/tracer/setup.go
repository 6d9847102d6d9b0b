package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
)

// instrumentationName identifies spans created by msgcodec.
const instrumentationName = "github.com/Aleph-Alpha/msgcodec"

// Tracer wraps an OpenTelemetry TracerProvider and exposes the few span
// helpers msgcodec components need. It is safe for concurrent use.
type Tracer struct {
	provider *trace.TracerProvider
	logger   logger.Logger
}

// NewClient creates a TracerProvider for cfg, installs it as the global
// provider and returns a Tracer using it.
//
// If trace export is enabled an OTLP HTTP exporter is attached with a batching
// span processor.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "gateway", AppEnv: "prod"}, log)
//	if err != nil {
//	    return err
//	}
//	ctx, span := t.StartSpan(ctx, "encode")
//	defer span.End()
func NewClient(cfg Config, log logger.Logger) (*Tracer, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info("tracer initialized", nil, map[string]interface{}{
		"service": cfg.ServiceName,
		"export":  cfg.EnableExport,
	})
	return &Tracer{provider: tp, logger: log}, nil
}

// NewFromProvider wraps an existing provider without touching global state.
// Useful in tests together with tracetest.SpanRecorder.
func NewFromProvider(tp *trace.TracerProvider, log logger.Logger) *Tracer {
	return &Tracer{provider: tp, logger: log}
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
