// Package schema normalizes template configuration documents into an ordered
// list of configuration entries.
//
// Two document shapes are understood: a structured JSON schema whose nested
// "object" properties form namespaces, and a flat .env.example style text
// where comment blocks describe the assignment that follows them.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Entry is a single configurable environment key.
type Entry struct {
	// Key is the canonical environment variable name (e.g. NEXT_PUBLIC_SITE_URL).
	Key string `json:"key" yaml:"key"`

	// Description is the human-readable explanation, possibly empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default is the declared default value, possibly empty.
	Default string `json:"default" yaml:"default"`

	// Required reports whether the key must resolve to a non-empty value.
	Required bool `json:"required" yaml:"required"`
}

// Format identifies which document shape produced a set of entries.
type Format string

const (
	// FormatStructured is a nested JSON schema document.
	FormatStructured Format = "schema"

	// FormatFlat is a line-oriented KEY=value document.
	FormatFlat Format = "env"
)

// RequiredKeys are mandatory for every template regardless of how the
// flat document describes them.
var RequiredKeys = map[string]bool{
	"NEXT_PUBLIC_API_URL":        true,
	"NEXT_PUBLIC_SITE_URL":       true,
	"NEXT_PUBLIC_SALEOR_CHANNEL": true,
}

// Keys returns the entry keys in document order.
func Keys(entries []Entry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Stringify renders a decoded JSON or YAML scalar as an environment value.
// Nil becomes the empty string, arrays are joined with commas and objects
// are rendered as compact JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case *Object:
		data, err := t.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ",")
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
