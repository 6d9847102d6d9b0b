package schema_registry

import "context"

// Registry is a remote source of msgcodec message descriptors, stored as
// schema documents in a Confluent compatible schema registry.
//
// This interface is implemented by the concrete *Client type.
type Registry interface {
	// GetSchemaByID retrieves a schema by its ID
	GetSchemaByID(ctx context.Context, id int) (string, error)

	// GetLatestSchema retrieves the latest version of a schema for a subject
	GetLatestSchema(ctx context.Context, subject string) (*Metadata, error)

	// RegisterSchema registers a new schema for a subject and returns its ID
	RegisterSchema(ctx context.Context, subject, schema, schemaType string) (int, error)
}

// Metadata contains metadata about a registered schema
type Metadata struct {
	ID      int    `json:"id"`
	Version int    `json:"version"`
	Schema  string `json:"schema"`
	Subject string `json:"subject"`
	Type    string `json:"schemaType,omitempty"`
}
