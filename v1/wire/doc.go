// Package wire provides the low-level primitives of the msgcodec wire format.
//
// The format is a close relative of the protocol buffers encoding: every field
// is introduced by a packed tag carrying the field number and a wire type, and
// integers are written as variable-length varints. The heavy lifting is done by
// google.golang.org/protobuf/encoding/protowire; this package adds the mapping
// from msgcodec's declared type names ("uInt32", "sInt32", "float", ...) to wire
// types and a classifier telling scalar types apart from message references.
//
// Core Features:
//   - Unsigned and zigzag-signed varint encoding (32 and 64 bit)
//   - Fixed 4-byte and 8-byte little-endian floating point encoding
//   - Tag packing: varint((tag << 3) | wire_type)
//   - Declared type name to wire type lookup with a length-delimited fallback
//   - Bounds-checked decoders for all of the above
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/msgcodec/v1/wire"
//
//	buf := wire.AppendTag(nil, 1, wire.WireTypeOf(wire.TypeUInt32))
//	buf = wire.AppendVarUInt32(buf, 7)
//	// buf == []byte{0x08, 0x07}
//
//	v, n, err := wire.DecodeVarSInt32(wire.EncodeVarSInt32(-1))
//	// v == -1, n == 1
package wire
