package decoder

import (
	"errors"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/observability"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
)

// DecoderClient decodes msgcodec messages back into records. It only reads
// the registry and is safe for concurrent use.
type DecoderClient struct {
	cfg      Config
	registry *schema.Registry
	logger   logger.Logger
	observer observability.Observer
}

// NewClient creates a decoder reading descriptors from registry.
func NewClient(cfg Config, registry *schema.Registry) (*DecoderClient, error) {
	if registry == nil {
		return nil, errors.New("decoder: schema registry is required")
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &DecoderClient{
		cfg:      cfg,
		registry: registry,
		logger:   logger.NewNop(),
	}, nil
}

// WithLogger attaches a logger used for decoding diagnostics.
func (d *DecoderClient) WithLogger(l logger.Logger) *DecoderClient {
	if l != nil {
		d.logger = l
	}
	return d
}

// WithObserver attaches an observer notified once per decode.
func (d *DecoderClient) WithObserver(observer observability.Observer) *DecoderClient {
	d.observer = observer
	return d
}
