package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarUInt32Encoding(t *testing.T) {
	cases := []struct {
		in   uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tc := range cases {
		got := EncodeVarUInt32(tc.in)
		assert.Equal(t, tc.want, got, "encode %d", tc.in)
		assert.Equal(t, len(tc.want), SizeVarUInt32(tc.in))

		v, n, err := DecodeVarUInt32(got)
		require.NoError(t, err)
		assert.Equal(t, tc.in, v)
		assert.Equal(t, len(got), n)
	}
}

func TestVarSInt32ZigZag(t *testing.T) {
	assert.Equal(t, []byte{0x00}, EncodeVarSInt32(0))
	assert.Equal(t, []byte{0x01}, EncodeVarSInt32(-1))
	assert.Equal(t, []byte{0x02}, EncodeVarSInt32(1))
	assert.Equal(t, []byte{0x03}, EncodeVarSInt32(-2))

	for _, v := range []int32{0, -1, 1, -64, 64, math.MaxInt32, math.MinInt32} {
		v2, _, err := DecodeVarSInt32(EncodeVarSInt32(v))
		require.NoError(t, err)
		assert.Equal(t, v, v2)
	}
}

func TestVarSInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, 1, math.MaxInt64, math.MinInt64} {
		got, _, err := DecodeVarSInt64(AppendVarSInt64(nil, v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecodeVarUInt32Overflow(t *testing.T) {
	b := AppendVarUInt64(nil, math.MaxUint32+1)
	_, _, err := DecodeVarUInt32(b)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := DecodeVarUInt32([]byte{0x80})
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeFloat32([]byte{0x00, 0x00})
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeFloat64([]byte{0x00})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFixedWidthLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, AppendFloat32(nil, 1.0))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f}, AppendFloat64(nil, 1.0))

	f, n, err := DecodeFloat64(AppendFloat64(nil, -2.5))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, -2.5, f)
}

func TestTagPacking(t *testing.T) {
	assert.Equal(t, []byte{0x08}, AppendTag(nil, 1, Varint))
	assert.Equal(t, []byte{0x12}, AppendTag(nil, 2, LengthDelimited))
	assert.Equal(t, []byte{0x25}, AppendTag(nil, 4, Fixed32))

	tag, wt, n, err := DecodeTag(AppendTag(nil, MaxTag, Fixed64))
	require.NoError(t, err)
	assert.Equal(t, uint32(MaxTag), tag)
	assert.Equal(t, Fixed64, wt)
	assert.Equal(t, 5, n)
}

func TestWireTypeOf(t *testing.T) {
	assert.Equal(t, Varint, WireTypeOf(TypeUInt32))
	assert.Equal(t, Varint, WireTypeOf(TypeInt32))
	assert.Equal(t, Varint, WireTypeOf(TypeSInt32))
	assert.Equal(t, Fixed64, WireTypeOf(TypeDouble))
	assert.Equal(t, Fixed32, WireTypeOf(TypeFloat))
	assert.Equal(t, LengthDelimited, WireTypeOf(TypeString))
	assert.Equal(t, LengthDelimited, WireTypeOf("Point"))
	assert.Equal(t, Type(2), WireTypeOf("whatever"))
}

func TestIsPrimitiveType(t *testing.T) {
	for _, name := range []string{TypeUInt32, TypeInt32, TypeSInt32, TypeUInt64, TypeSInt64, TypeFloat, TypeDouble, TypeString} {
		assert.True(t, IsPrimitiveType(name), name)
	}
	assert.False(t, IsPrimitiveType(TypeMessage))
	assert.False(t, IsPrimitiveType("Point"))
}

func TestSkipValue(t *testing.T) {
	n, err := SkipValue([]byte{0xac, 0x02, 0xff}, Varint)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SkipValue([]byte{0x02, 'h', 'i', 0x00}, LengthDelimited)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = SkipValue([]byte{0x05, 'h'}, LengthDelimited)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = SkipValue([]byte{0x00}, Type(3))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeBytes(t *testing.T) {
	b, n, err := DecodeBytes([]byte{0x02, 'h', 'i', 0x08})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("hi"), b)

	_, _, err = DecodeBytes([]byte{0x03, 'h'})
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = DecodeBytes(nil)
	assert.ErrorIs(t, err, ErrTruncated)
}
