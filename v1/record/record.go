// Package record provides the structured value model consumed by the encoder
// and produced by the decoder.
//
// A Record is a string-keyed map that remembers insertion order. The encoder
// walks a value in its own field order, so callers that care about the byte
// layout of the output build a Record; plain map[string]any values are also
// accepted and are walked in sorted key order to keep output deterministic.
//
// JSON decoding preserves key order and produces *Record for objects, []any for
// arrays and json.Number for numbers.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is an insertion-ordered map from field name to value.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]any
}

// Entry is one field of a structured value.
type Entry struct {
	Name  string
	Value any
}

// NewRecord returns a record populated from alternating name/value pairs.
//
//	r := record.NewRecord("id", 7, "name", "hi")
func NewRecord(pairs ...any) *Record {
	r := &Record{}
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("record: key at position %d is %T, not string", i, pairs[i]))
		}
		r.Set(name, pairs[i+1])
	}
	return r
}

// Set stores value under name. Existing fields keep their position.
func (r *Record) Set(name string, value any) *Record {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
	return r
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[name]
	return v, ok
}

// Delete removes name from the record.
func (r *Record) Delete(name string) {
	if r == nil {
		return
	}
	if _, ok := r.values[name]; !ok {
		return
	}
	delete(r.values, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Entries returns the fields in insertion order.
func (r *Record) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, Entry{Name: k, Value: r.values[k]})
	}
	return out
}

// Lookup returns the value of name in a structured value. ok is false when
// value is not a structured value or the field is missing.
func Lookup(value any, name string) (any, bool) {
	switch v := value.(type) {
	case *Record:
		return v.Get(name)
	case map[string]any:
		field, ok := v[name]
		return field, ok
	}
	return nil, false
}

// Fields returns the fields of a structured value in its natural order.
// *Record yields insertion order, map[string]any yields sorted key order.
// ok is false when value is not a structured value.
func Fields(value any) ([]Entry, bool) {
	switch v := value.(type) {
	case *Record:
		if v == nil {
			return nil, false
		}
		return v.Entries(), true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Entry, 0, len(keys))
		for _, k := range keys {
			out = append(out, Entry{Name: k, Value: v[k]})
		}
		return out, true
	}
	return nil, false
}

// IsStructured reports whether value is a *Record or map[string]any.
func IsStructured(value any) bool {
	switch v := value.(type) {
	case *Record:
		return v != nil
	case map[string]any:
		return true
	}
	return false
}

// MarshalJSON writes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("record: field %q: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the order of its keys.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}
	*r = Record{}
	return r.decodeObject(dec)
}

// decodeObject consumes object members up to and including the closing brace.
func (r *Record) decodeObject(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: expected object key, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return err
		}
		r.Set(key, val)
	}
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		child := &Record{}
		if err := child.decodeObject(dec); err != nil {
			return nil, err
		}
		return child, nil
	case '[':
		list := make([]any, 0)
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, fmt.Errorf("record: unexpected delimiter %v", d)
}
