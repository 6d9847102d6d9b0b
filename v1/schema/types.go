package schema

import (
	"fmt"

	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

// Option is the presence rule of a field.
type Option string

const (
	Required Option = "required"
	Optional Option = "optional"
	Repeated Option = "repeated"
)

// FieldDescriptor is the per-field rule of a message: presence option,
// declared type and wire tag.
type FieldDescriptor struct {
	Name   string
	Option Option

	// Type is either a scalar type name (see the wire package) or the name
	// of another message type.
	Type string
	Tag  uint32
}

// IsMessage reports whether the declared type refers to another message.
func (f *FieldDescriptor) IsMessage() bool {
	return !wire.IsPrimitiveType(f.Type)
}

// MessageDescriptor is the schema of one structured message.
//
// Fields keep their declaration order. Nested message types declared inside
// the message are resolved before the registry's global types.
type MessageDescriptor struct {
	Name string

	fields []*FieldDescriptor
	byName map[string]*FieldDescriptor
	byTag  map[uint32]*FieldDescriptor
	nested map[string]*MessageDescriptor
}

// NewMessageDescriptor returns an empty descriptor for the named message type.
func NewMessageDescriptor(name string) *MessageDescriptor {
	return &MessageDescriptor{
		Name:   name,
		byName: make(map[string]*FieldDescriptor),
		byTag:  make(map[uint32]*FieldDescriptor),
		nested: make(map[string]*MessageDescriptor),
	}
}

// AddField declares a field. Names and tags must be unique within the message.
func (m *MessageDescriptor) AddField(f FieldDescriptor) error {
	if f.Name == "" {
		return fmt.Errorf("%w: message %q has a field without a name", ErrInvalidDescriptor, m.Name)
	}
	if f.Tag == 0 || f.Tag > wire.MaxTag {
		return fmt.Errorf("%w: %s.%s tag %d", ErrInvalidTag, m.Name, f.Name, f.Tag)
	}
	if _, ok := m.byName[f.Name]; ok {
		return fmt.Errorf("%w: %s.%s", ErrDuplicateField, m.Name, f.Name)
	}
	if other, ok := m.byTag[f.Tag]; ok {
		return fmt.Errorf("%w: %s.%s reuses tag %d of %s", ErrDuplicateField, m.Name, f.Name, f.Tag, other.Name)
	}
	field := f
	m.fields = append(m.fields, &field)
	m.byName[f.Name] = &field
	m.byTag[f.Tag] = &field
	return nil
}

// MustAddField is AddField for statically known schemas; it panics on error.
func (m *MessageDescriptor) MustAddField(name string, option Option, typeName string, tag uint32) *MessageDescriptor {
	if err := m.AddField(FieldDescriptor{Name: name, Option: option, Type: typeName, Tag: tag}); err != nil {
		panic(err)
	}
	return m
}

// AddNested declares a message type local to this message.
func (m *MessageDescriptor) AddNested(d *MessageDescriptor) error {
	if d == nil || d.Name == "" {
		return fmt.Errorf("%w: nested message in %q", ErrInvalidDescriptor, m.Name)
	}
	m.nested[d.Name] = d
	return nil
}

// Field returns the field declared under name.
func (m *MessageDescriptor) Field(name string) (*FieldDescriptor, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// FieldByTag returns the field declared with tag.
func (m *MessageDescriptor) FieldByTag(tag uint32) (*FieldDescriptor, bool) {
	f, ok := m.byTag[tag]
	return f, ok
}

// Fields returns the fields in declaration order.
func (m *MessageDescriptor) Fields() []*FieldDescriptor {
	out := make([]*FieldDescriptor, len(m.fields))
	copy(out, m.fields)
	return out
}

// Nested returns the local message type named typeName.
func (m *MessageDescriptor) Nested(typeName string) (*MessageDescriptor, bool) {
	d, ok := m.nested[typeName]
	return d, ok
}
