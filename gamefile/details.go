package gamefile

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Details is the secondary JSON payload of a submission. Values are whatever
// JSON produced: strings, float64, bool, nil, []any or map[string]any.
type Details map[string]any

// LoadDetails decodes raw into Details. It never fails: malformed input, a
// non-object value, or a JSON string that does not itself decode to an
// object all yield an empty map. At most one extra layer of string encoding
// is unwrapped.
func LoadDetails(raw string) Details {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return Details{}
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return Details{}
	}
	if s, ok := v.(string); ok {
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return Details{}
		}
		v = inner
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Details{}
	}
	return Details(m)
}

// Has reports whether key is present with a non-null value.
func (d Details) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// String returns the value at key as a string, or def when the key is absent
// or null. Arrays are joined with newlines so list-shaped answers tokenize
// the same way as multi-line text.
func (d Details) String(key, def string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return def
	}
	return stringify(v)
}

// Bool interprets the value at key as a flag. JSON booleans are used as-is;
// strings and numbers go through ParseFlag.
func (d Details) Bool(key string) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return ParseFlag(stringify(v))
}

// ParseFlag converts a form or environment flag to a bool. "true", "yes",
// "y", "1" and "on" are true in any case; everything else is false.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true
	}
	return false
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(x))
		for _, e := range x {
			if e == nil {
				continue
			}
			parts = append(parts, stringify(e))
		}
		return strings.Join(parts, "\n")
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
