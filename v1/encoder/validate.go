package encoder

import (
	"fmt"

	"github.com/Aleph-Alpha/msgcodec/v1/record"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

// Validate checks value against the descriptor registered for route.
func (e *EncoderClient) Validate(route string, value any) error {
	if route == "" || isAbsent(value) {
		return ErrMissingInput
	}
	desc, ok := e.registry.Resolve(route)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnresolvedSchema, route)
	}
	return e.validateMessage(value, desc, route, 0)
}

// validateMessage walks the descriptor fields in declaration order and stops
// at the first violation.
func (e *EncoderClient) validateMessage(value any, desc *schema.MessageDescriptor, path string, depth int) error {
	if depth >= e.cfg.MaxDepth {
		return fmt.Errorf("%w: %s", ErrTooDeep, path)
	}
	if !record.IsStructured(value) {
		return &ValidationError{Path: path, Field: desc.Name, Reason: fmt.Sprintf("expected a structured value, got %T", value)}
	}

	for _, field := range desc.Fields() {
		fv, present := record.Lookup(value, field.Name)
		present = present && !isAbsent(fv)

		switch field.Option {
		case schema.Required:
			if !present {
				return &ValidationError{Path: path, Field: field.Name, Reason: "required field missing"}
			}
			// a present required field gets the same nested check as an optional one
			if err := e.validateNested(desc, field, fv, path, depth); err != nil {
				return err
			}
		case schema.Optional:
			if present {
				if err := e.validateNested(desc, field, fv, path, depth); err != nil {
					return err
				}
			}
		case schema.Repeated:
			if present {
				if err := e.validateRepeated(desc, field, fv, path, depth); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// validateNested recurses into message typed fields. Scalars and types that
// do not resolve are not checked further.
func (e *EncoderClient) validateNested(parent *schema.MessageDescriptor, field *schema.FieldDescriptor, value any, path string, depth int) error {
	nested, ok := e.resolveMessage(parent, field)
	if !ok {
		return nil
	}
	return e.validateMessage(value, nested, path+"."+field.Name, depth+1)
}

// validateRepeated checks each element of a repeated message field. Scalar
// arrays are trusted.
func (e *EncoderClient) validateRepeated(parent *schema.MessageDescriptor, field *schema.FieldDescriptor, value any, path string, depth int) error {
	nested, ok := e.resolveMessage(parent, field)
	if !ok {
		return nil
	}
	items, ok := listItems(value)
	if !ok {
		return &ValidationError{Path: path, Field: field.Name, Reason: fmt.Sprintf("expected a list, got %T", value)}
	}
	for i, item := range items {
		if err := e.validateMessage(item, nested, fmt.Sprintf("%s.%s[%d]", path, field.Name, i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// resolveMessage looks up the message type of a field, local types first.
func (e *EncoderClient) resolveMessage(parent *schema.MessageDescriptor, field *schema.FieldDescriptor) (*schema.MessageDescriptor, bool) {
	if wire.IsPrimitiveType(field.Type) {
		return nil, false
	}
	return e.registry.ResolveNested(parent, field.Type)
}

// isAbsent reports whether v counts as not supplied.
func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *record.Record:
		return x == nil
	case map[string]any:
		return x == nil
	}
	return false
}
