// Package record models untyped provider JSON and the safe accessors the
// parsers are built from. The provider renames fields between API revisions
// and occasionally reuses a key name for an incompatible type, so every
// accessor reports presence explicitly instead of defaulting.
package record

import (
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Record is a single untyped JSON object as decoded from a provider payload.
type Record map[string]any

// Decode turns a raw JSON payload into a Record. An array payload is not a
// Record; callers that expect lists go through FindRecords instead.
func Decode(raw []byte) (Record, error) {
	var out Record
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Child returns the nested object under key, or nil when the key is absent
// or holds a non-object value.
func (r Record) Child(key string) Record {
	if r == nil {
		return nil
	}
	obj, ok := r[key].(map[string]any)
	if !ok {
		return nil
	}
	return Record(obj)
}

// ChildAny returns the first nested object found under the candidate keys.
func (r Record) ChildAny(keys ...string) Record {
	for _, key := range keys {
		if child := r.Child(key); child != nil {
			return child
		}
	}
	return nil
}

// Records returns the array of objects under key. Non-object elements are
// skipped. Returns nil when the key is absent or not an array.
func (r Record) Records(key string) []Record {
	if r == nil {
		return nil
	}
	return toRecords(r[key])
}

func toRecords(raw any) []Record {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Record(obj))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Has reports whether the key is present, regardless of its value type.
func (r Record) Has(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r[key]
	return ok
}

// Int coerces the value under key to an int. Floats are truncated, never
// rounded: downstream market-value deltas rely on truncation semantics.
func (r Record) Int(key string) (int, bool) {
	v, ok := r.Int64(key)
	return int(v), ok
}

func (r Record) Int64(key string) (int64, bool) {
	if r == nil {
		return 0, false
	}
	raw, ok := r[key]
	if !ok {
		return 0, false
	}
	return CoerceInt64(raw)
}

// Float coerces the value under key to a float64.
func (r Record) Float(key string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	raw, ok := r[key]
	if !ok {
		return 0, false
	}
	return CoerceFloat(raw)
}

// String coerces the value under key to a string. Numeric values are
// rendered, since the provider flips ids between string and number across
// revisions.
func (r Record) String(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	raw, ok := r[key]
	if !ok {
		return "", false
	}
	return CoerceString(raw)
}

// Bool coerces the value under key to a bool, accepting the numeric and
// string truthiness encodings seen in historical payloads.
func (r Record) Bool(key string) (bool, bool) {
	if r == nil {
		return false, false
	}
	raw, ok := r[key]
	if !ok {
		return false, false
	}
	return CoerceBool(raw)
}

// CoerceInt64 narrows an untyped JSON scalar to int64. Order: directly
// typed, same-family numeric cast (truncating), string-to-number parse.
func CoerceInt64(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case int64:
		return typed, true
	case int:
		return int64(typed), true
	case float64:
		return int64(typed), true
	case float32:
		return int64(typed), true
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return 0, false
		}
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return v, true
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func CoerceFloat(raw any) (float64, bool) {
	switch typed := raw.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		text := strings.TrimSpace(typed)
		if text == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func CoerceString(raw any) (string, bool) {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed), true
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10), true
		}
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case float32:
		return CoerceString(float64(typed))
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	default:
		return "", false
	}
}

func CoerceBool(raw any) (bool, bool) {
	switch typed := raw.(type) {
	case bool:
		return typed, true
	case float64:
		return typed != 0, true
	case float32:
		return typed != 0, true
	case int:
		return typed != 0, true
	case int64:
		return typed != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}
