package encoder

import (
	"errors"
	"sync/atomic"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/observability"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
)

// EncoderClient encodes values against the descriptors held by a schema
// registry. It is safe for concurrent use: the registry is only read and
// every encode owns its buffer.
type EncoderClient struct {
	cfg      Config
	registry *schema.Registry
	logger   logger.Logger
	observer observability.Observer
	tracer   Tracer

	encoded    atomic.Int64
	failed     atomic.Int64
	unresolved atomic.Int64
}

// NewClient creates an encoder reading descriptors from registry.
// Zero config fields are replaced by their defaults.
func NewClient(cfg Config, registry *schema.Registry) (*EncoderClient, error) {
	if registry == nil {
		return nil, errors.New("encoder: schema registry is required")
	}
	if cfg.InitialBufferSize <= 0 {
		cfg.InitialBufferSize = DefaultInitialBufferSize
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultBatchConcurrency
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MaxMessageSize < 0 {
		cfg.MaxMessageSize = 0
	}

	return &EncoderClient{
		cfg:      cfg,
		registry: registry,
		logger:   logger.NewNop(),
	}, nil
}

// WithLogger attaches a logger used for encoding diagnostics.
// This method uses the builder pattern and returns the client for method chaining.
func (e *EncoderClient) WithLogger(l logger.Logger) *EncoderClient {
	if l != nil {
		e.logger = l
	}
	return e
}

// WithObserver attaches an observer notified once per encode.
//
// Example:
//
//	enc, err := encoder.NewClient(encoder.Config{}, registry)
//	if err != nil {
//	    return err
//	}
//	enc = enc.WithObserver(metrics.NewMetrics(metrics.Config{ServiceName: "gateway"}))
func (e *EncoderClient) WithObserver(observer observability.Observer) *EncoderClient {
	e.observer = observer
	return e
}

// WithTracer attaches a tracer; EncodeContext then opens one span per encode.
func (e *EncoderClient) WithTracer(t Tracer) *EncoderClient {
	e.tracer = t
	return e
}

// Stats returns the counters accumulated so far.
func (e *EncoderClient) Stats() Stats {
	return Stats{
		Encoded:          e.encoded.Load(),
		Failed:           e.failed.Load(),
		UnresolvedNested: e.unresolved.Load(),
	}
}
