package resolve

import (
	"bytes"
	"encoding/json"
)

// Values maps entry keys to resolved values in entry order.
type Values struct {
	keys   []string
	values map[string]string
}

// NewValues returns an empty value map.
func NewValues() *Values {
	return &Values{values: make(map[string]string)}
}

// Set assigns a value. A repeated key keeps its original position.
func (v *Values) Set(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value for key.
func (v *Values) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (v *Values) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Len returns the number of values.
func (v *Values) Len() int {
	return len(v.keys)
}

// Map returns a copy of the values as a plain map.
func (v *Values) Map() map[string]string {
	m := make(map[string]string, len(v.values))
	for k, value := range v.values {
		m[k] = value
	}
	return m
}

// MarshalJSON encodes the values as a JSON object in insertion order.
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalString(key)
		if err != nil {
			return nil, err
		}
		val, err := marshalString(v.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
