// Package schema holds message descriptors and the registry that resolves them.
//
// A MessageDescriptor maps field names to FieldDescriptors ({option, type, tag})
// and may declare nested message types of its own. The Registry maps routes to
// top-level descriptors and keeps global message types; a field that refers to
// a message type is resolved against the enclosing descriptor first and the
// global types second.
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/msgcodec/v1/schema"
//
//	user := schema.NewMessageDescriptor("user").
//	    MustAddField("id", schema.Required, "uInt32", 1).
//	    MustAddField("name", schema.Optional, "string", 2)
//
//	reg := schema.NewRegistry()
//	_ = reg.Register("user.login", user)
//
//	d, ok := reg.Resolve("user.login")
//
// Loading from a document:
//
//	reg, err := schema.LoadFile("protos.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Concurrency:
//
// Populate the registry before handing it to encoders. All read paths take a
// read lock only, so any number of encoders may resolve concurrently.
package schema
