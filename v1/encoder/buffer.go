package encoder

import (
	"math"

	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

// buffer is an append-only output buffer. Capacity doubles on demand; limit,
// when positive, bounds the total length.
type buffer struct {
	b     []byte
	limit int
}

func newBuffer(size, limit int) *buffer {
	return &buffer{b: make([]byte, 0, size), limit: limit}
}

// reserve makes room for n more bytes.
func (buf *buffer) reserve(n int) error {
	need := len(buf.b) + n
	if buf.limit > 0 && need > buf.limit {
		return ErrBufferTooSmall
	}
	if need <= cap(buf.b) {
		return nil
	}
	newCap := 2 * cap(buf.b)
	if newCap < need {
		newCap = need
	}
	if buf.limit > 0 && newCap > buf.limit {
		newCap = buf.limit
	}
	grown := make([]byte, len(buf.b), newCap)
	copy(grown, buf.b)
	buf.b = grown
	return nil
}

func (buf *buffer) writeTag(tag uint32, wireType wire.Type) error {
	if err := buf.reserve(wire.SizeTag(tag)); err != nil {
		return err
	}
	buf.b = wire.AppendTag(buf.b, tag, wireType)
	return nil
}

func (buf *buffer) writeVarUInt32(v uint32) error {
	if err := buf.reserve(wire.SizeVarUInt32(v)); err != nil {
		return err
	}
	buf.b = wire.AppendVarUInt32(buf.b, v)
	return nil
}

func (buf *buffer) writeVarSInt32(v int32) error {
	if err := buf.reserve(wire.SizeVarUInt32(uint32(v<<1) ^ uint32(v>>31))); err != nil {
		return err
	}
	buf.b = wire.AppendVarSInt32(buf.b, v)
	return nil
}

func (buf *buffer) writeVarUInt64(v uint64) error {
	if err := buf.reserve(wire.SizeVarUInt64(v)); err != nil {
		return err
	}
	buf.b = wire.AppendVarUInt64(buf.b, v)
	return nil
}

func (buf *buffer) writeVarSInt64(v int64) error {
	if err := buf.reserve(wire.SizeVarUInt64(uint64(v<<1) ^ uint64(v>>63))); err != nil {
		return err
	}
	buf.b = wire.AppendVarSInt64(buf.b, v)
	return nil
}

func (buf *buffer) writeFloat32(v float32) error {
	if err := buf.reserve(4); err != nil {
		return err
	}
	buf.b = wire.AppendFloat32(buf.b, v)
	return nil
}

func (buf *buffer) writeFloat64(v float64) error {
	if err := buf.reserve(8); err != nil {
		return err
	}
	buf.b = wire.AppendFloat64(buf.b, v)
	return nil
}

// writeBytes writes a varint length followed by p.
func (buf *buffer) writeBytes(p []byte) error {
	if uint64(len(p)) > math.MaxUint32 {
		return ErrBufferTooSmall
	}
	if err := buf.writeVarUInt32(uint32(len(p))); err != nil {
		return err
	}
	if err := buf.reserve(len(p)); err != nil {
		return err
	}
	buf.b = append(buf.b, p...)
	return nil
}

func (buf *buffer) Len() int {
	return len(buf.b)
}

// Bytes returns the written bytes with capacity trimmed to length.
func (buf *buffer) Bytes() []byte {
	return buf.b[:len(buf.b):len(buf.b)]
}
