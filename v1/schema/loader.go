package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const messagePrefix = "message"

// ParseDocument builds a registry from a compiled schema document.
//
// The document is a JSON object whose members are either routes or global
// message types:
//
//	{
//	  "area.move": {
//	    "required uInt32 entityId": 1,
//	    "message Point": {"required double x": 1, "required double y": 2},
//	    "repeated Point path": 2
//	  },
//	  "message Vec": {"optional float x": 1}
//	}
//
// Field members are "<option> <type> <name>": tag. "message <Type>" members
// declare a message type: inside a message it is local to that message, at the
// top level it is global. Member order is kept as declaration order.
func ParseDocument(data []byte) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	reg := NewRegistry()
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		if name, ok := messageName(key); ok {
			d, err := parseMessage(dec, name)
			if err != nil {
				return nil, err
			}
			if err := reg.RegisterGlobal(d); err != nil {
				return nil, err
			}
			continue
		}
		d, err := parseMessage(dec, key)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(key, d); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return reg, nil
}

// ParseMessage builds a single message descriptor named name from the JSON
// body of one message, in the same member syntax ParseDocument uses.
func ParseMessage(name string, data []byte) (*MessageDescriptor, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return parseMessage(dec, name)
}

// Load reads a schema document from r.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}
	return ParseDocument(data)
}

// LoadFile reads a schema document from path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	reg, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	return reg, nil
}

func parseMessage(dec *json.Decoder, name string) (*MessageDescriptor, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("message %q: %w", name, err)
	}
	d := NewMessageDescriptor(name)
	for dec.More() {
		key, err := nextKey(dec)
		if err != nil {
			return nil, err
		}
		if nestedName, ok := messageName(key); ok {
			nested, err := parseMessage(dec, nestedName)
			if err != nil {
				return nil, err
			}
			if err := d.AddNested(nested); err != nil {
				return nil, err
			}
			continue
		}

		parts := strings.Fields(key)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: message %q: field key %q is not \"<option> <type> <name>\"", ErrInvalidDocument, name, key)
		}
		tag, err := nextTag(dec)
		if err != nil {
			return nil, fmt.Errorf("message %q field %q: %w", name, parts[2], err)
		}
		if err := d.AddField(FieldDescriptor{
			Name:   parts[2],
			Option: Option(parts[0]),
			Type:   parts[1],
			Tag:    tag,
		}); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return d, nil
}

func messageName(key string) (string, bool) {
	parts := strings.Fields(key)
	if len(parts) == 2 && parts[0] == messagePrefix {
		return parts[1], true
	}
	return "", false
}

func nextKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected member name, got %v", ErrInvalidDocument, tok)
	}
	return key, nil
}

func nextTag(dec *json.Decoder) (uint32, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: tag must be a number, got %v", ErrInvalidDocument, tok)
	}
	tag, err := strconv.ParseUint(num.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: tag %s", ErrInvalidTag, num)
	}
	return uint32(tag), nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrInvalidDocument, want, tok)
	}
	return nil
}
