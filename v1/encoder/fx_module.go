package encoder

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/observability"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/tracer"
)

// FXModule is an fx.Module that provides the encoder.
//
// The module provides:
// 1. *EncoderClient (concrete type) for direct use
// 2. Encoder interface for dependency injection
//
// It needs a *schema.Registry (see schema.FXModule) and a Config. A logger,
// an observability.Observer and a *tracer.Tracer are picked up when present.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema.FXModule,
//	    encoder.FXModule,
//	    fx.Provide(
//	        func() logger.Config { return logger.Config{Level: logger.Info} },
//	        func() schema.Config { return schema.Config{Path: "protos.json"} },
//	        func() encoder.Config { return encoder.Config{} },
//	    ),
//	)
var FXModule = fx.Module("encoder",
	fx.Provide(
		NewClientWithDI,
		func(e *EncoderClient) Encoder { return e },
	),
	fx.Invoke(RegisterEncoderLifecycle),
)

// EncoderParams groups the dependencies needed to create an encoder.
type EncoderParams struct {
	fx.In

	Config   Config
	Registry *schema.Registry
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   *tracer.Tracer         `optional:"true"`
}

// NewClientWithDI creates an encoder from injected dependencies.
func NewClientWithDI(params EncoderParams) (*EncoderClient, error) {
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
	if params.Tracer != nil {
		client = client.WithTracer(params.Tracer)
	}
	return client, nil
}

// RegisterEncoderLifecycle logs the routes the encoder serves once the
// application has started.
func RegisterEncoderLifecycle(lc fx.Lifecycle, e *EncoderClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			e.logger.Info("encoder ready", nil, map[string]interface{}{
				"routes": e.registry.Routes(),
			})
			return nil
		},
	})
}
