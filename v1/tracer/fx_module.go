package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a *Tracer and shuts its provider down when the
// application stops, flushing pending spans.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "gateway", AppEnv: "prod"}
//	    }),
//	)
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers the shutdown hook of t.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			t.logger.Info("shutting down tracer", nil, nil)
			return t.Shutdown(ctx)
		},
	})
}
