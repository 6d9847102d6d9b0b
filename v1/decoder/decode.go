package decoder

import (
	"fmt"
	"time"

	"github.com/Aleph-Alpha/msgcodec/v1/record"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

// Decode parses data with the descriptor registered for route.
//
// Fields may appear in any order. Tags the descriptor does not declare, and
// fields whose message type cannot be resolved, are skipped by wire type.
// Scalars decode to uint32, int32, uint64, int64, float32, float64 or string;
// nested messages to *record.Record; repeated fields to []any.
func (d *DecoderClient) Decode(route string, data []byte) (rec *record.Record, err error) {
	start := time.Now()
	defer func() {
		d.observeOperation("decode", route, time.Since(start), err, int64(len(data)))
	}()

	if route == "" || len(data) == 0 {
		return nil, ErrMissingInput
	}
	desc, ok := d.registry.Resolve(route)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedSchema, route)
	}

	rec, err = d.decodeMessage(desc, data, route, 0)
	if err != nil {
		d.logger.Warn("failed to decode message", err, map[string]interface{}{
			"route": route,
			"size":  len(data),
		})
		return nil, err
	}
	return rec, nil
}

func (d *DecoderClient) decodeMessage(desc *schema.MessageDescriptor, data []byte, path string, depth int) (*record.Record, error) {
	if depth >= d.cfg.MaxDepth {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, path)
	}

	rec := record.NewRecord()
	for len(data) > 0 {
		tag, wt, n, err := wire.DecodeTag(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: tag: %w", ErrMalformed, path, err)
		}
		data = data[n:]

		field, ok := desc.FieldByTag(tag)
		if ok && !wire.IsPrimitiveType(field.Type) {
			if _, resolved := d.registry.ResolveNested(desc, field.Type); !resolved {
				ok = false
			}
		}
		if !ok || !knownOption(field.Option) {
			n, err = wire.SkipValue(data, wt)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: skipping tag %d: %w", ErrMalformed, path, tag, err)
			}
			data = data[n:]
			continue
		}
		if want := wire.WireTypeOf(field.Type); wt != want {
			return nil, fmt.Errorf("%w: %s.%s: wire type %d, want %d", ErrMalformed, path, field.Name, wt, want)
		}

		if field.Option == schema.Repeated {
			n, err = d.decodeRepeated(rec, desc, field, data, path, depth)
		} else {
			var v any
			v, n, err = d.decodeValue(desc, field, data, path, depth)
			if err == nil {
				rec.Set(field.Name, v)
			}
		}
		if err != nil {
			return nil, err
		}
		data = data[n:]
	}

	for _, field := range desc.Fields() {
		if field.Option != schema.Required {
			continue
		}
		if _, ok := rec.Get(field.Name); !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingRequired, path, field.Name)
		}
	}
	return rec, nil
}

// decodeRepeated appends to the list already collected for field, so a
// repeated field may be split over several occurrences.
func (d *DecoderClient) decodeRepeated(rec *record.Record, parent *schema.MessageDescriptor, field *schema.FieldDescriptor, data []byte, path string, depth int) (int, error) {
	var list []any
	if existing, ok := rec.Get(field.Name); ok {
		list, _ = existing.([]any)
	}

	if !wire.IsPrimitiveType(field.Type) {
		v, n, err := d.decodeValue(parent, field, data, fmt.Sprintf("%s.%s[%d]", path, field.Name, len(list)), depth)
		if err != nil {
			return 0, err
		}
		rec.Set(field.Name, append(list, v))
		return n, nil
	}

	count, read, err := wire.DecodeVarUInt32(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %s.%s: count: %w", ErrMalformed, path, field.Name, err)
	}
	for i := uint32(0); i < count; i++ {
		v, n, err := decodeScalar(field.Type, data[read:])
		if err != nil {
			return 0, fmt.Errorf("%w: %s.%s[%d]: %w", ErrMalformed, path, field.Name, len(list), err)
		}
		list = append(list, v)
		read += n
	}
	rec.Set(field.Name, list)
	return read, nil
}

func (d *DecoderClient) decodeValue(parent *schema.MessageDescriptor, field *schema.FieldDescriptor, data []byte, path string, depth int) (any, int, error) {
	if wire.IsPrimitiveType(field.Type) {
		v, n, err := decodeScalar(field.Type, data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s.%s: %w", ErrMalformed, path, field.Name, err)
		}
		return v, n, nil
	}

	nested, _ := d.registry.ResolveNested(parent, field.Type)
	payload, n, err := wire.DecodeBytes(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s.%s: %w", ErrMalformed, path, field.Name, err)
	}
	childPath := path
	if field.Option != schema.Repeated {
		childPath = path + "." + field.Name
	}
	v, err := d.decodeMessage(nested, payload, childPath, depth+1)
	if err != nil {
		return nil, 0, err
	}
	return v, n, nil
}

func decodeScalar(typeName string, data []byte) (any, int, error) {
	switch typeName {
	case wire.TypeUInt32:
		return wrap(wire.DecodeVarUInt32(data))
	case wire.TypeInt32, wire.TypeSInt32:
		return wrap(wire.DecodeVarSInt32(data))
	case wire.TypeUInt64:
		return wrap(wire.DecodeVarUInt64(data))
	case wire.TypeSInt64:
		return wrap(wire.DecodeVarSInt64(data))
	case wire.TypeFloat:
		return wrap(wire.DecodeFloat32(data))
	case wire.TypeDouble:
		return wrap(wire.DecodeFloat64(data))
	case wire.TypeString:
		b, n, err := wire.DecodeBytes(data)
		if err != nil {
			return nil, 0, err
		}
		return string(b), n, nil
	}
	return nil, 0, fmt.Errorf("unsupported scalar type %q", typeName)
}

func wrap[T any](v T, n int, err error) (any, int, error) {
	if err != nil {
		return nil, 0, err
	}
	return v, n, nil
}

func knownOption(o schema.Option) bool {
	return o == schema.Required || o == schema.Optional || o == schema.Repeated
}
