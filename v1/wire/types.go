package wire

import "google.golang.org/protobuf/encoding/protowire"

// Type is the 3-bit wire type packed into every field tag.
type Type = protowire.Type

// Wire types used by msgcodec.
const (
	Varint          Type = protowire.VarintType
	Fixed64         Type = protowire.Fixed64Type
	LengthDelimited Type = protowire.BytesType
	Fixed32         Type = protowire.Fixed32Type
)

// Declared type names understood by the codec.
const (
	TypeUInt32  = "uInt32"
	TypeInt32   = "int32"
	TypeSInt32  = "sInt32"
	TypeUInt64  = "uInt64"
	TypeSInt64  = "sInt64"
	TypeFloat   = "float"
	TypeDouble  = "double"
	TypeString  = "string"
	TypeMessage = "message"
)

// MaxTag is the largest field number that fits a packed tag.
const MaxTag = 1<<29 - 1

var wireTypes = map[string]Type{
	TypeUInt32:  Varint,
	TypeInt32:   Varint,
	TypeSInt32:  Varint,
	TypeUInt64:  Varint,
	TypeSInt64:  Varint,
	TypeDouble:  Fixed64,
	TypeString:  LengthDelimited,
	TypeMessage: LengthDelimited,
	TypeFloat:   Fixed32,
}

// WireTypeOf returns the wire type for a declared type name. Names that are not
// recognized scalars (message type names among them) map to LengthDelimited.
func WireTypeOf(typeName string) Type {
	if t, ok := wireTypes[typeName]; ok {
		return t
	}
	return LengthDelimited
}

// IsPrimitiveType reports whether typeName is a scalar type rather than a
// reference to another message type.
func IsPrimitiveType(typeName string) bool {
	switch typeName {
	case TypeUInt32, TypeInt32, TypeSInt32, TypeUInt64, TypeSInt64,
		TypeFloat, TypeDouble, TypeString:
		return true
	}
	return false
}
