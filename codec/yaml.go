package codec

import (
	"gopkg.in/yaml.v3"

	formtree "github.com/reoring/formtree"
)

// EncodeYAML renders the form's current values as a YAML mapping.
func EncodeYAML(f *formtree.Form) ([]byte, error) {
	return yaml.Marshal(Values(f))
}

// ApplyYAML decodes a YAML mapping and applies it to f via Apply. Integers
// decode as int and floats as float64, per yaml.v3.
func ApplyYAML(f *formtree.Form, data []byte) (*formtree.Form, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return Apply(f, m)
}
