// Package logger provides structured logging for msgcodec components.
//
// It wraps go.uber.org/zap behind a small interface taking a message, an
// optional error and optional field maps, so that packages can log
// diagnostics without depending on zap directly.
//
// Direct Usage:
//
//	import "github.com/Aleph-Alpha/msgcodec/v1/logger"
//
//	log, err := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Debug,
//	    ServiceName: "gateway",
//	})
//	if err != nil {
//	    panic(err)
//	}
//	log.Warn("nested type not resolved", nil, map[string]interface{}{
//	    "route": "area.move",
//	    "type":  "Point",
//	})
//
// In tests, wrap a zaptest logger:
//
//	log := logger.NewFromZap(zaptest.NewLogger(t))
//
// FX Module Integration:
//
//	app := fx.New(
//	    logger.FXModule, // Provides *LoggerClient and logger.Logger
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info}
//	    }),
//	)
package logger
