package schema_registry

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/msgcodec/v1/schema"
)

// LoadRoute fetches the latest schema of subject, parses it as the message
// body of route and installs it into target. It returns the schema ID so that
// encoded messages can be framed with it.
//
// Example:
//
//	id, err := schema_registry.LoadRoute(ctx, client, registry, "area.move", "area.move-value")
//	if err != nil {
//	    return err
//	}
//	out, err := enc.Encode("area.move", value)
//	framed := schema_registry.Frame(id, out)
func LoadRoute(ctx context.Context, client Registry, target *schema.Registry, route, subject string) (int, error) {
	md, err := client.GetLatestSchema(ctx, subject)
	if err != nil {
		return 0, err
	}
	d, err := schema.ParseMessage(route, []byte(md.Schema))
	if err != nil {
		return 0, fmt.Errorf("subject %s: %w", subject, err)
	}
	if err := target.Register(route, d); err != nil {
		return 0, err
	}
	return md.ID, nil
}

// LoadDocument fetches the latest schema of subject as a complete document
// (routes and global messages) and merges it into target.
func LoadDocument(ctx context.Context, client Registry, target *schema.Registry, subject string) (int, error) {
	md, err := client.GetLatestSchema(ctx, subject)
	if err != nil {
		return 0, err
	}
	doc, err := schema.ParseDocument([]byte(md.Schema))
	if err != nil {
		return 0, fmt.Errorf("subject %s: %w", subject, err)
	}
	target.Merge(doc)
	return md.ID, nil
}
