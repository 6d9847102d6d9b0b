/*
Package encoder turns structured values into the msgcodec binary format.

Every route has a message descriptor in a schema.Registry. Encoding a value
first validates it against that descriptor: required fields must be present,
and present message typed fields are checked recursively. The value is then
walked in its own order (insertion order for *record.Record, sorted key order
for map[string]any) and every declared field is written as

	varint((tag << 3) | wireType) payload

Scalar payloads are varints (uInt32, uInt64), zigzag varints (int32, sInt32,
sInt64), fixed little-endian floats (float, double) or length prefixed UTF-8
(string). Nested messages are encoded recursively and length prefixed.

Repeated fields are asymmetric. A scalar list is written under one tag,
followed by the element count and the element payloads:

	tag count payload payload ...

A message list repeats the tag for every element, each with its own length
prefix. Fields the descriptor does not declare are silently dropped. A field
whose message type resolves neither among the nested types of its parent nor
among the global types is skipped, logged and counted in Stats.

Basic usage:

	reg := schema.NewRegistry()
	_ = reg.Register("user.login", schema.NewMessageDescriptor("user.login").
	    MustAddField("id", schema.Required, wire.TypeUInt32, 1).
	    MustAddField("name", schema.Optional, wire.TypeString, 2))

	enc, err := encoder.NewClient(encoder.Config{}, reg)
	if err != nil {
	    return err
	}
	enc = enc.WithLogger(log)

	out, err := enc.Encode("user.login", record.NewRecord("id", 7, "name", "hi"))
	// out == []byte{0x08, 0x07, 0x12, 0x02, 'h', 'i'}

Failures never panic; Encode returns a nil slice and one of the package
errors (ErrMissingInput, ErrUnresolvedSchema, ErrValidationFailed,
ErrInvalidValue, ErrBufferTooSmall, ErrEmptyMessage), possibly wrapped.

Thread Safety:

An EncoderClient is safe for concurrent use. EncodeBatch encodes many values
in parallel with a bounded number of goroutines.
*/
package encoder
