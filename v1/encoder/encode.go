package encoder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Aleph-Alpha/msgcodec/v1/record"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

// encodeState carries per call bookkeeping through the recursion.
type encodeState struct {
	route   string
	skipped []string
	depth   int
}

// Encode validates value against the descriptor registered for route and
// returns its encoding.
func (e *EncoderClient) Encode(route string, value any) ([]byte, error) {
	return e.encode(route, value)
}

// EncodeContext is Encode wrapped in a "msgcodec.encode" span when a tracer
// is attached.
func (e *EncoderClient) EncodeContext(ctx context.Context, route string, value any) ([]byte, error) {
	if e.tracer == nil {
		return e.encode(route, value)
	}

	_, span := e.tracer.StartSpan(ctx, "msgcodec.encode")
	defer span.End()

	out, err := e.encode(route, value)
	span.SetAttributes(
		attribute.String("msgcodec.route", route),
		attribute.Int("msgcodec.size", len(out)),
	)
	if err != nil {
		e.tracer.RecordErrorOnSpan(span, err)
	}
	return out, err
}

func (e *EncoderClient) encode(route string, value any) (out []byte, err error) {
	start := time.Now()
	st := &encodeState{route: route}
	defer func() {
		if err != nil {
			e.failed.Add(1)
		} else {
			e.encoded.Add(1)
		}
		e.observeOperation("encode", route, time.Since(start), err, int64(len(out)), st.skipped)
	}()

	if route == "" || isAbsent(value) {
		e.logger.Warn("encode called without route or value", ErrMissingInput, map[string]interface{}{
			"route": route,
		})
		return nil, ErrMissingInput
	}

	desc, ok := e.registry.Resolve(route)
	if !ok {
		err = fmt.Errorf("%w: %q", ErrUnresolvedSchema, route)
		e.logger.Warn("no schema registered for route", err, map[string]interface{}{
			"route": route,
		})
		return nil, err
	}

	if err = e.validateMessage(value, desc, route, 0); err != nil {
		e.logger.Warn("message failed validation", err, map[string]interface{}{
			"route":      route,
			"descriptor": desc.Name,
			"value":      value,
		})
		return nil, err
	}

	buf := newBuffer(e.cfg.InitialBufferSize, e.cfg.MaxMessageSize)
	if err = e.encodeMessage(st, buf, desc, value, route); err != nil {
		e.logger.Error("failed to encode message", err, map[string]interface{}{
			"route": route,
			"value": value,
		})
		return nil, err
	}

	if buf.Len() == 0 {
		e.logger.Warn("encoded message is empty", ErrEmptyMessage, map[string]interface{}{
			"route": route,
		})
		return nil, ErrEmptyMessage
	}

	return buf.Bytes(), nil
}

// encodeMessage writes the fields of value in the value's own order. Fields
// the descriptor does not declare and absent values are dropped.
func (e *EncoderClient) encodeMessage(st *encodeState, buf *buffer, desc *schema.MessageDescriptor, value any, path string) error {
	entries, ok := record.Fields(value)
	if !ok {
		return fmt.Errorf("%w: %s: expected a structured value, got %T", ErrInvalidValue, path, value)
	}

	for _, entry := range entries {
		field, ok := desc.Field(entry.Name)
		if !ok || isAbsent(entry.Value) {
			continue
		}

		var err error
		switch field.Option {
		case schema.Required, schema.Optional:
			err = e.encodeField(st, buf, desc, field, entry.Value, path)
		case schema.Repeated:
			err = e.encodeRepeated(st, buf, desc, field, entry.Value, path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *EncoderClient) encodeField(st *encodeState, buf *buffer, parent *schema.MessageDescriptor, field *schema.FieldDescriptor, value any, path string) error {
	if wire.IsPrimitiveType(field.Type) {
		if err := buf.writeTag(field.Tag, wire.WireTypeOf(field.Type)); err != nil {
			return err
		}
		return e.encodeScalar(buf, field, value, path)
	}

	nested, ok := e.registry.ResolveNested(parent, field.Type)
	if !ok {
		e.skipUnresolved(st, parent, field, path)
		return nil
	}
	if err := buf.writeTag(field.Tag, wire.WireTypeOf(field.Type)); err != nil {
		return err
	}
	return e.encodeNested(st, buf, nested, value, path+"."+field.Name)
}

// encodeRepeated writes scalar lists as one tag, an element count and the
// payloads; message lists as one tagged, length prefixed payload per element.
func (e *EncoderClient) encodeRepeated(st *encodeState, buf *buffer, parent *schema.MessageDescriptor, field *schema.FieldDescriptor, value any, path string) error {
	items, ok := listItems(value)
	if !ok {
		return fmt.Errorf("%w: %s.%s: expected a list, got %T", ErrInvalidValue, path, field.Name, value)
	}
	if len(items) == 0 {
		return nil
	}

	if wire.IsPrimitiveType(field.Type) {
		if err := buf.writeTag(field.Tag, wire.WireTypeOf(field.Type)); err != nil {
			return err
		}
		if err := buf.writeVarUInt32(uint32(len(items))); err != nil {
			return err
		}
		for i, item := range items {
			if err := e.encodeScalar(buf, field, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	nested, ok := e.registry.ResolveNested(parent, field.Type)
	if !ok {
		e.skipUnresolved(st, parent, field, path)
		return nil
	}
	for i, item := range items {
		if err := buf.writeTag(field.Tag, wire.WireTypeOf(field.Type)); err != nil {
			return err
		}
		if err := e.encodeNested(st, buf, nested, item, fmt.Sprintf("%s.%s[%d]", path, field.Name, i)); err != nil {
			return err
		}
	}
	return nil
}

// encodeNested encodes value into a scratch buffer and writes it length prefixed.
func (e *EncoderClient) encodeNested(st *encodeState, buf *buffer, desc *schema.MessageDescriptor, value any, path string) error {
	if st.depth+1 >= e.cfg.MaxDepth {
		return fmt.Errorf("%w: %s", ErrTooDeep, path)
	}
	limit := 0
	if buf.limit > 0 {
		limit = buf.limit - buf.Len()
		if limit <= 0 {
			return ErrBufferTooSmall
		}
	}
	scratch := newBuffer(e.cfg.InitialBufferSize, limit)
	st.depth++
	err := e.encodeMessage(st, scratch, desc, value, path)
	st.depth--
	if err != nil {
		return err
	}
	return buf.writeBytes(scratch.b)
}

func (e *EncoderClient) encodeScalar(buf *buffer, field *schema.FieldDescriptor, value any, path string) error {
	var err error
	ok := true
	switch field.Type {
	case wire.TypeUInt32:
		var v uint32
		if v, ok = toUint32(value); ok {
			err = buf.writeVarUInt32(v)
		}
	case wire.TypeInt32, wire.TypeSInt32:
		var v int32
		if v, ok = toInt32(value); ok {
			err = buf.writeVarSInt32(v)
		}
	case wire.TypeUInt64:
		var v uint64
		if v, ok = toUint64(value); ok {
			err = buf.writeVarUInt64(v)
		}
	case wire.TypeSInt64:
		var v int64
		if v, ok = toInt64(value); ok {
			err = buf.writeVarSInt64(v)
		}
	case wire.TypeFloat:
		var v float64
		if v, ok = toFloat64(value); ok {
			if ok = !outOfFloat32Range(v); ok {
				err = buf.writeFloat32(float32(v))
			}
		}
	case wire.TypeDouble:
		var v float64
		if v, ok = toFloat64(value); ok {
			err = buf.writeFloat64(v)
		}
	case wire.TypeString:
		var v []byte
		if v, ok = toBytes(value); ok {
			err = buf.writeBytes(v)
		}
	default:
		err = errors.New("unsupported scalar type")
	}

	if !ok {
		return fmt.Errorf("%w: %s.%s: %s cannot hold %T(%v)", ErrInvalidValue, path, field.Name, field.Type, value, value)
	}
	return err
}

// skipUnresolved records a field whose message type resolves neither locally
// nor globally. The field is left out of the output entirely.
func (e *EncoderClient) skipUnresolved(st *encodeState, parent *schema.MessageDescriptor, field *schema.FieldDescriptor, path string) {
	e.unresolved.Add(1)
	st.skipped = append(st.skipped, path+"."+field.Name)
	e.logger.Warn("skipping field with unresolved message type", nil, map[string]interface{}{
		"route":      st.route,
		"descriptor": parent.Name,
		"field":      field.Name,
		"type":       field.Type,
	})
}
