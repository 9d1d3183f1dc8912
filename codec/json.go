package codec

import (
	j "github.com/goccy/go-json"

	formtree "github.com/reoring/formtree"
)

// EncodeJSON renders the form's current values as a JSON object.
func EncodeJSON(f *formtree.Form) ([]byte, error) {
	return j.Marshal(Values(f))
}

// ApplyJSON decodes a JSON object and applies it to f via Apply. Numbers
// decode as float64.
func ApplyJSON(f *formtree.Form, data []byte) (*formtree.Form, error) {
	var m map[string]any
	if err := j.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return Apply(f, m)
}
