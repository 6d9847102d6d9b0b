package decoder

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/observability"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
)

// FXModule provides a *DecoderClient backed by the application's *schema.Registry.
var FXModule = fx.Module("decoder",
	fx.Provide(
		NewClientWithDI,
	),
)

// DecoderParams groups the dependencies needed to create a decoder.
type DecoderParams struct {
	fx.In

	Config   Config
	Registry *schema.Registry
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates a decoder from injected dependencies.
func NewClientWithDI(params DecoderParams) (*DecoderClient, error) {
	client, err := NewClient(params.Config, params.Registry)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		client = client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client, nil
}
