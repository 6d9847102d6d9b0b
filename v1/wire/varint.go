package wire

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// EncodeVarUInt32 returns the minimal varint encoding of v.
func EncodeVarUInt32(v uint32) []byte {
	return AppendVarUInt32(nil, v)
}

// EncodeVarSInt32 returns the zigzag varint encoding of v.
func EncodeVarSInt32(v int32) []byte {
	return AppendVarSInt32(nil, v)
}

// AppendVarUInt32 appends the varint encoding of v to b.
func AppendVarUInt32(b []byte, v uint32) []byte {
	return protowire.AppendVarint(b, uint64(v))
}

// AppendVarSInt32 appends the zigzag varint encoding of v to b.
// Small magnitudes stay small: -1 encodes as 0x01, 1 as 0x02.
func AppendVarSInt32(b []byte, v int32) []byte {
	return protowire.AppendVarint(b, uint64(uint32(v<<1)^uint32(v>>31)))
}

// AppendVarUInt64 appends the varint encoding of v to b.
func AppendVarUInt64(b []byte, v uint64) []byte {
	return protowire.AppendVarint(b, v)
}

// AppendVarSInt64 appends the zigzag varint encoding of v to b.
func AppendVarSInt64(b []byte, v int64) []byte {
	return protowire.AppendVarint(b, protowire.EncodeZigZag(v))
}

// AppendFloat32 appends v as 4 little-endian bytes.
func AppendFloat32(b []byte, v float32) []byte {
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

// AppendFloat64 appends v as 8 little-endian bytes.
func AppendFloat64(b []byte, v float64) []byte {
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

// AppendTag appends the packed tag varint((tag << 3) | wireType).
func AppendTag(b []byte, tag uint32, wireType Type) []byte {
	return protowire.AppendVarint(b, uint64(tag)<<3|uint64(wireType&7))
}

// ParseTag splits a packed tag into its field number and wire type.
func ParseTag(packed uint64) (uint32, Type) {
	return uint32(packed >> 3), Type(packed & 7)
}

// SizeVarUInt32 returns the number of bytes the varint encoding of v takes.
func SizeVarUInt32(v uint32) int {
	return protowire.SizeVarint(uint64(v))
}

// SizeVarUInt64 returns the number of bytes the varint encoding of v takes.
func SizeVarUInt64(v uint64) int {
	return protowire.SizeVarint(v)
}

// SizeTag returns the number of bytes the packed tag takes.
func SizeTag(tag uint32) int {
	return protowire.SizeVarint(uint64(tag) << 3)
}

// DecodeVarUInt64 reads a varint from the start of b and returns it with the
// number of bytes consumed.
func DecodeVarUInt64(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, consumeError(n)
	}
	return v, n, nil
}

// DecodeVarUInt32 reads an unsigned 32-bit varint from the start of b.
func DecodeVarUInt32(b []byte) (uint32, int, error) {
	v, n, err := DecodeVarUInt64(b)
	if err != nil {
		return 0, 0, err
	}
	if v > math.MaxUint32 {
		return 0, 0, ErrOverflow
	}
	return uint32(v), n, nil
}

// DecodeVarSInt32 reads a zigzag-encoded signed 32-bit varint from the start of b.
func DecodeVarSInt32(b []byte) (int32, int, error) {
	v, n, err := DecodeVarUInt32(b)
	if err != nil {
		return 0, 0, err
	}
	return int32(v>>1) ^ -int32(v&1), n, nil
}

// DecodeVarSInt64 reads a zigzag-encoded signed 64-bit varint from the start of b.
func DecodeVarSInt64(b []byte) (int64, int, error) {
	v, n, err := DecodeVarUInt64(b)
	if err != nil {
		return 0, 0, err
	}
	return protowire.DecodeZigZag(v), n, nil
}

// DecodeFloat32 reads 4 little-endian bytes from the start of b.
func DecodeFloat32(b []byte) (float32, int, error) {
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, 0, consumeError(n)
	}
	return math.Float32frombits(v), n, nil
}

// DecodeFloat64 reads 8 little-endian bytes from the start of b.
func DecodeFloat64(b []byte) (float64, int, error) {
	v, n := protowire.ConsumeFixed64(b)
	if n < 0 {
		return 0, 0, consumeError(n)
	}
	return math.Float64frombits(v), n, nil
}

// DecodeBytes reads a varint length prefix and the bytes it covers. The
// returned slice aliases b.
func DecodeBytes(b []byte) ([]byte, int, error) {
	l, n, err := DecodeVarUInt32(b)
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(b)-n) < uint64(l) {
		return nil, 0, ErrTruncated
	}
	end := n + int(l)
	return b[n:end], end, nil
}

// DecodeTag reads a packed tag from the start of b.
func DecodeTag(b []byte) (uint32, Type, int, error) {
	v, n, err := DecodeVarUInt64(b)
	if err != nil {
		return 0, 0, 0, err
	}
	tag, wt := ParseTag(v)
	return tag, wt, n, nil
}

// SkipValue returns the number of bytes taken by a value of the given wire type
// at the start of b. Length-delimited values use a varint length prefix.
func SkipValue(b []byte, wireType Type) (int, error) {
	switch wireType {
	case Varint:
		_, n, err := DecodeVarUInt64(b)
		return n, err
	case Fixed32:
		if len(b) < 4 {
			return 0, ErrTruncated
		}
		return 4, nil
	case Fixed64:
		if len(b) < 8 {
			return 0, ErrTruncated
		}
		return 8, nil
	case LengthDelimited:
		_, n, err := DecodeBytes(b)
		return n, err
	default:
		return 0, ErrMalformed
	}
}

func consumeError(n int) error {
	if n == -1 { // protowire.errCodeTruncated
		return ErrTruncated
	}
	if n == -3 { // protowire.errCodeOverflow
		return ErrOverflow
	}
	return ErrMalformed
}
