// Package schema_registry distributes msgcodec message descriptors through a
// Confluent compatible schema registry.
//
// Descriptors are stored as JSON schema documents in the member syntax of
// schema.ParseDocument. LoadRoute fetches the latest version of a subject and
// installs it into a *schema.Registry; LoadDocument merges a whole document.
// Frame, EncodeSchemaID and DecodeSchemaID implement the Confluent wire
// header ([0x0][4 byte big-endian schema ID]) so consumers can tell which
// descriptor version produced a payload.
//
// Basic Usage:
//
//	client, err := schema_registry.NewClient(schema_registry.Config{
//	    URL: "http://localhost:8081",
//	})
//	if err != nil {
//	    return err
//	}
//
//	id, err := client.RegisterSchema(ctx, "area.move-value",
//	    `{"required uInt32 entityId": 1}`, schema_registry.SchemaType)
//
//	registry := schema.NewRegistry()
//	id, err = schema_registry.LoadRoute(ctx, client, registry, "area.move", "area.move-value")
//
// Schemas and IDs are cached per client; the cache is safe for concurrent use.
package schema_registry
