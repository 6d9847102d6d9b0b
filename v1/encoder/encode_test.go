package encoder

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/record"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

func newTestRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	reg := schema.NewRegistry()

	login := schema.NewMessageDescriptor("user.login").
		MustAddField("id", schema.Required, wire.TypeUInt32, 1).
		MustAddField("name", schema.Optional, wire.TypeString, 2)
	require.NoError(t, reg.Register("user.login", login))

	point := schema.NewMessageDescriptor("Point").
		MustAddField("x", schema.Required, wire.TypeSInt32, 1).
		MustAddField("y", schema.Required, wire.TypeSInt32, 2)
	move := schema.NewMessageDescriptor("area.move").
		MustAddField("to", schema.Optional, "Point", 1).
		MustAddField("path", schema.Repeated, "Point", 2).
		MustAddField("ids", schema.Repeated, wire.TypeUInt32, 4).
		MustAddField("speed", schema.Optional, wire.TypeFloat, 5).
		MustAddField("dist", schema.Optional, wire.TypeDouble, 6).
		MustAddField("ghost", schema.Optional, "Ghost", 7).
		MustAddField("anchor", schema.Optional, "Anchor", 8).
		MustAddField("big", schema.Optional, wire.TypeUInt64, 9).
		MustAddField("delta", schema.Optional, wire.TypeSInt64, 10).
		MustAddField("ghosts", schema.Repeated, "Ghost", 11)
	require.NoError(t, move.AddNested(point))
	require.NoError(t, reg.Register("area.move", move))

	home := schema.NewMessageDescriptor("user.profile").
		MustAddField("home", schema.Required, "Point", 1)
	require.NoError(t, home.AddNested(point))
	require.NoError(t, reg.Register("user.profile", home))

	anchor := schema.NewMessageDescriptor("Anchor").
		MustAddField("name", schema.Required, wire.TypeString, 1)
	require.NoError(t, reg.RegisterGlobal(anchor))

	return reg
}

func newTestEncoder(t *testing.T, cfg Config) *EncoderClient {
	t.Helper()
	enc, err := NewClient(cfg, newTestRegistry(t))
	require.NoError(t, err)
	return enc
}

func TestEncodeScalars(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("user.login", record.NewRecord("id", 7, "name", "hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07, 0x12, 0x02, 'h', 'i'}, out)
}

func TestEncodeFollowsValueOrder(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("user.login", record.NewRecord("name", "hi", "id", 7))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x02, 'h', 'i', 0x08, 0x07}, out)

	// maps have no order of their own and are walked by sorted key
	out, err = enc.Encode("user.login", map[string]any{"name": "hi", "id": 7})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07, 0x12, 0x02, 'h', 'i'}, out)
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc := newTestEncoder(t, Config{})
	value := map[string]any{
		"ids":   []any{1, 2, 3},
		"path":  []any{map[string]any{"x": 1, "y": 2}},
		"speed": 2.5,
	}

	first, err := enc.Encode("area.move", value)
	require.NoError(t, err)
	second, err := enc.Encode("area.move", value)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeDropsUnknownFields(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("user.login", record.NewRecord("id", 7, "extra", "ignored"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07}, out)
}

func TestEncodeRepeatedScalars(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("ids", []any{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x03, 0x01, 0x02, 0x03}, out)

	// typed slices are lists too
	out, err = enc.Encode("area.move", record.NewRecord("ids", []uint32{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x03, 0x01, 0x02, 0x03}, out)
}

func TestEncodeRepeatedMessages(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	value := record.NewRecord("path", []any{
		record.NewRecord("x", 1, "y", -1),
		record.NewRecord("x", 0, "y", 0),
	})
	out, err := enc.Encode("area.move", value)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x12, 0x04, 0x08, 0x02, 0x10, 0x01,
		0x12, 0x04, 0x08, 0x00, 0x10, 0x00,
	}, out)
}

func TestEncodeEmptyListWritesNothing(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("ids", []any{}, "path", []any{}, "dist", 0.5))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x31, 0, 0, 0, 0, 0, 0, 0xe0, 0x3f}, out)
}

func TestEncodeNestedMessage(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("to", record.NewRecord("x", -1, "y", 1)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x04, 0x08, 0x01, 0x10, 0x02}, out)
}

func TestEncodeGlobalMessage(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("anchor", record.NewRecord("name", "a")))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42, 0x03, 0x0a, 0x01, 'a'}, out)
}

func TestEncodeFloatingPoint(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("speed", 1.5, "dist", 0.5))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x2d, 0x00, 0x00, 0xc0, 0x3f,
		0x31, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xe0, 0x3f,
	}, out)
}

func TestEncode64BitIntegers(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("big", uint64(1)<<40, "delta", int64(-2)))
	require.NoError(t, err)
	expected := wire.AppendTag(nil, 9, wire.Varint)
	expected = wire.AppendVarUInt64(expected, 1<<40)
	expected = wire.AppendTag(expected, 10, wire.Varint)
	expected = append(expected, 0x03)
	assert.Equal(t, expected, out)
}

func TestEncodeAcceptsJSONNumbers(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	var value record.Record
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "hi"}`), &value))

	out, err := enc.Encode("user.login", &value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07, 0x12, 0x02, 'h', 'i'}, out)
}

func TestEncodeSkipsUnresolvedTypes(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	enc := newTestEncoder(t, Config{}).WithLogger(logger.NewFromZap(zap.New(core)))

	out, err := enc.Encode("area.move", record.NewRecord(
		"ghost", record.NewRecord("a", 1),
		"ghosts", []any{record.NewRecord()},
		"speed", 1.5,
	))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2d, 0x00, 0x00, 0xc0, 0x3f}, out)
	assert.Equal(t, int64(2), enc.Stats().UnresolvedNested)

	skipped := logs.FilterMessage("skipping field with unresolved message type")
	require.Equal(t, 2, skipped.Len())
	assert.Equal(t, "Ghost", skipped.All()[0].ContextMap()["type"])
}

func TestEncodeFailures(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	tests := []struct {
		name  string
		route string
		value any
		want  error
	}{
		{"no route", "", record.NewRecord("id", 1), ErrMissingInput},
		{"nil value", "user.login", nil, ErrMissingInput},
		{"nil record", "user.login", (*record.Record)(nil), ErrMissingInput},
		{"unknown route", "user.logout", record.NewRecord("id", 1), ErrUnresolvedSchema},
		{"missing required", "user.login", record.NewRecord("name", "x"), ErrValidationFailed},
		{"not structured", "user.login", 42, ErrValidationFailed},
		{"negative unsigned", "user.login", record.NewRecord("id", -1), ErrInvalidValue},
		{"fractional integer", "user.login", record.NewRecord("id", 1.5), ErrInvalidValue},
		{"unsigned overflow", "user.login", record.NewRecord("id", uint64(1)<<32), ErrInvalidValue},
		{"string for integer", "user.login", record.NewRecord("id", "seven"), ErrInvalidValue},
		{"integer for string", "user.login", record.NewRecord("id", 1, "name", 5), ErrInvalidValue},
		{"scalar list not a list", "area.move", record.NewRecord("ids", 3), ErrInvalidValue},
		{"only unresolved fields", "area.move", record.NewRecord("ghost", record.NewRecord()), ErrEmptyMessage},
		{"empty record", "area.move", record.NewRecord(), ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := enc.Encode(tt.route, tt.value)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeMaxMessageSize(t *testing.T) {
	enc := newTestEncoder(t, Config{MaxMessageSize: 4})

	out, err := enc.Encode("user.login", record.NewRecord("id", 7, "name", "hi"))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	out, err = enc.Encode("user.login", record.NewRecord("id", 7))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x07}, out)
}

func TestEncodeLimitCoversNestedMessages(t *testing.T) {
	enc := newTestEncoder(t, Config{MaxMessageSize: 5})

	_, err := enc.Encode("area.move", record.NewRecord("to", record.NewRecord("x", 1, "y", 1)))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestEncodeGrowsSmallBuffer(t *testing.T) {
	enc := newTestEncoder(t, Config{InitialBufferSize: 1})

	name := string(make([]byte, 300))
	out, err := enc.Encode("user.login", record.NewRecord("id", 1, "name", name))
	require.NoError(t, err)
	require.Len(t, out, 2+1+2+300)
	assert.Equal(t, []byte{0x08, 0x01, 0x12, 0xac, 0x02}, out[:5])
	assert.Equal(t, len(out), cap(out))
}

func TestStatsCountOutcomes(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	_, err := enc.Encode("user.login", record.NewRecord("id", 1))
	require.NoError(t, err)
	_, err = enc.Encode("user.login", record.NewRecord())
	require.Error(t, err)

	stats := enc.Stats()
	assert.Equal(t, int64(1), stats.Encoded)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Zero(t, stats.UnresolvedNested)
}

func TestNewClientRequiresRegistry(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.Error(t, err)

	enc, err := NewClient(Config{}, schema.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, DefaultInitialBufferSize, enc.cfg.InitialBufferSize)
	assert.Equal(t, DefaultBatchConcurrency, enc.cfg.BatchConcurrency)
	assert.Equal(t, DefaultMaxDepth, enc.cfg.MaxDepth)
}

func newNodeEncoder(t *testing.T, cfg Config) *EncoderClient {
	t.Helper()

	node := schema.NewMessageDescriptor("Node").
		MustAddField("id", schema.Optional, wire.TypeUInt32, 1).
		MustAddField("next", schema.Optional, "Node", 2).
		MustAddField("children", schema.Repeated, "Node", 3)
	reg := schema.NewRegistry()
	require.NoError(t, reg.RegisterGlobal(node))
	require.NoError(t, reg.Register("node", node))

	enc, err := NewClient(cfg, reg)
	require.NoError(t, err)
	return enc
}

func TestEncodeRejectsValueContainingItself(t *testing.T) {
	enc := newNodeEncoder(t, Config{})

	loop := record.NewRecord("id", 1)
	loop.Set("next", loop)

	out, err := enc.Encode("node", loop)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrTooDeep)

	list := record.NewRecord("id", 1)
	list.Set("children", []any{list})
	out, err = enc.Encode("node", list)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrTooDeep)

	out, err = enc.Encode("node", record.NewRecord("id", 1, "next", record.NewRecord("id", 2)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01, 0x12, 0x02, 0x08, 0x02}, out)
}

func TestEncodeMaxDepth(t *testing.T) {
	enc := newNodeEncoder(t, Config{MaxDepth: 2})

	_, err := enc.Encode("node", record.NewRecord("next", record.NewRecord("id", 2)))
	require.NoError(t, err)

	_, err = enc.Encode("node", record.NewRecord("next", record.NewRecord("next", record.NewRecord("id", 3))))
	assert.ErrorIs(t, err, ErrTooDeep)
	assert.ErrorIs(t, enc.Validate("node", record.NewRecord("next", record.NewRecord("next", record.NewRecord()))), ErrTooDeep)

	// the guard also holds in the encode walk on its own
	buf := newBuffer(8, 0)
	desc, _ := enc.registry.Resolve("node")
	err = enc.encodeNested(&encodeState{route: "node", depth: 1}, buf, desc, record.NewRecord("id", 1), "node.next")
	assert.ErrorIs(t, err, ErrTooDeep)
	assert.Zero(t, buf.Len())
}

func TestEncodeNestedIntoFullBuffer(t *testing.T) {
	enc := newTestEncoder(t, Config{MaxMessageSize: 1})

	buf := newBuffer(1, 1)
	require.NoError(t, buf.writeTag(1, wire.LengthDelimited))
	desc, _ := enc.registry.Resolve("user.login")

	// a non structured value would fail with ErrInvalidValue if it were walked
	err := enc.encodeNested(&encodeState{route: "area.move"}, buf, desc, 42, "area.move.to")
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	_, err = enc.Encode("area.move", record.NewRecord("to", record.NewRecord("x", 1, "y", 1)))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestEncodeFloatRange(t *testing.T) {
	enc := newTestEncoder(t, Config{})

	out, err := enc.Encode("area.move", record.NewRecord("speed", 1e300))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = enc.Encode("area.move", record.NewRecord("speed", -1e39))
	assert.ErrorIs(t, err, ErrInvalidValue)

	out, err = enc.Encode("area.move", record.NewRecord("speed", math.MaxFloat32))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2d, 0xff, 0xff, 0x7f, 0x7f}, out)

	out, err = enc.Encode("area.move", record.NewRecord("speed", math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2d, 0x00, 0x00, 0x80, 0x7f}, out)

	// doubles keep their full range
	_, err = enc.Encode("area.move", record.NewRecord("dist", 1e300))
	assert.NoError(t, err)
}
