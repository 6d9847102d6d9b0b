package schema_registry

import (
	"context"
	"sort"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
)

// FXModule is an fx.Module that provides the schema registry client.
//
// The module:
// 1. Provides *Client and the Registry interface
// 2. On start, loads the descriptors of Config.Routes into the *schema.Registry
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema.FXModule,
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() schema_registry.Config {
//	            return schema_registry.Config{
//	                URL:    os.Getenv("SCHEMA_REGISTRY_URL"),
//	                Routes: map[string]string{"area.move": "area.move-value"},
//	            }
//	        },
//	    ),
//	)
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Registry { return c },
	),
	fx.Invoke(RegisterSchemaRegistryLifecycle),
)

// SchemaRegistryParams groups the dependencies needed to create a Schema Registry client
type SchemaRegistryParams struct {
	fx.In

	Config Config
}

// NewClientWithDI creates a new Schema Registry client using dependency injection.
func NewClientWithDI(params SchemaRegistryParams) (*Client, error) {
	return NewClient(params.Config)
}

// SchemaRegistryLifecycleParams groups the dependencies needed for Schema Registry lifecycle management
type SchemaRegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Client    Registry
	Schemas   *schema.Registry
	Logger    logger.Logger `optional:"true"`
}

// RegisterSchemaRegistryLifecycle loads the configured routes before the
// application starts serving. A route that fails to load aborts start up.
func RegisterSchemaRegistryLifecycle(params SchemaRegistryLifecycleParams) {
	log := params.Logger
	if log == nil {
		log = logger.NewNop()
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := make([]string, 0, len(params.Config.Routes))
			for route := range params.Config.Routes {
				routes = append(routes, route)
			}
			sort.Strings(routes)

			for _, route := range routes {
				subject := params.Config.Routes[route]
				id, err := LoadRoute(ctx, params.Client, params.Schemas, route, subject)
				if err != nil {
					log.Error("failed to load route schema", err, map[string]interface{}{
						"route":   route,
						"subject": subject,
					})
					return err
				}
				log.Info("route schema loaded", nil, map[string]interface{}{
					"route":     route,
					"subject":   subject,
					"schema_id": id,
				})
			}
			return nil
		},
	})
}
