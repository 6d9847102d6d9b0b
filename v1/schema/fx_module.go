package schema

import (
	"go.uber.org/fx"
)

// FXModule provides a *Registry loaded from Config.Path.
//
// Usage:
//
//	app := fx.New(
//	    schema.FXModule,
//	    fx.Provide(func() schema.Config {
//	        return schema.Config{Path: "/etc/msgcodec/protos.json"}
//	    }),
//	)
//
// Applications that build their registry programmatically should provide a
// *schema.Registry directly instead of including this module.
var FXModule = fx.Module("schema",
	fx.Provide(
		NewRegistryWithDI,
	),
)

// RegistryParams groups the dependencies needed to load a Registry.
type RegistryParams struct {
	fx.In

	Config Config
}

// NewRegistryWithDI loads the registry described by params.Config.
// An empty path yields an empty registry that can be populated later.
func NewRegistryWithDI(params RegistryParams) (*Registry, error) {
	if params.Config.Path == "" {
		return NewRegistry(), nil
	}
	return LoadFile(params.Config.Path)
}
