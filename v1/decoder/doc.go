// Package decoder reads msgcodec messages back into *record.Record values.
//
// It is the inverse of the encoder package: a repeated scalar field is one tag,
// an element count and the payloads; a repeated message field is one tagged,
// length prefixed payload per element. Field order on the wire is not
// significant. Tags unknown to the descriptor are skipped by wire type; this
// works for every field shape except repeated scalars, whose count prefix
// cannot be told apart from a single value without the descriptor.
package decoder
