package encoder

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// toUint64 accepts any integer kind, an integral float or a json.Number.
// Negative values are rejected.
func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case json.Number:
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return u, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToUint64(f)
	case float32:
		return floatToUint64(float64(n))
	case float64:
		return floatToUint64(n)
	}
	if i, ok := signedInt(v); ok {
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
	return 0, false
}

// toInt64 accepts any integer kind, an integral float or a json.Number.
func toInt64(v any) (int64, bool) {
	if i, ok := signedInt(v); ok {
		return i, true
	}
	switch n := v.(type) {
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(n)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	}
	return 0, false
}

func toUint32(v any) (uint32, bool) {
	u, ok := toUint64(v)
	if !ok || u > math.MaxUint32 {
		return 0, false
	}
	return uint32(u), true
}

func toInt32(v any) (int32, bool) {
	i, ok := toInt64(v)
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// toFloat64 accepts any numeric kind or a json.Number.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(n)
		return float64(u), true
	}
	if i, ok := signedInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// outOfFloat32Range reports whether a finite f would become an infinity as a
// float32. Infinities and NaN pass through unchanged.
func outOfFloat32Range(f float64) bool {
	return !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32
}

// toBytes accepts a string or a byte slice.
func toBytes(v any) ([]byte, bool) {
	switch s := v.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	case json.Number:
		return []byte(s.String()), true
	}
	return nil, false
}

func signedInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func floatToUint64(f float64) (uint64, bool) {
	if f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// listItems returns the elements of a list value. Any slice or array kind is
// accepted except []byte, which is a string payload.
func listItems(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
