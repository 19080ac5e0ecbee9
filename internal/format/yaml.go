package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter handles YAML output formatting
type YAMLFormatter struct {
	w io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{w: w}
}

// Format formats data as YAML. Keys follow the JSON field names so both
// structured outputs agree.
func (f *YAMLFormatter) Format(data interface{}) error {
	generic, err := toGeneric(unwrapView(data))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	output, err := yaml.Marshal(plainNumbers(generic))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	fmt.Fprint(f.w, string(output))
	return nil
}

// toGeneric round-trips data through JSON into maps, slices and scalars.
// Numbers stay json.Number so large integers are not rendered as floats.
func toGeneric(data interface{}) (interface{}, error) {
	switch data.(type) {
	case nil, string, map[string]interface{}, []interface{}:
		return data, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// plainNumbers replaces json.Number, which yaml would quote as a string,
// with int64 or float64.
func plainNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]interface{}:
		for k, e := range t {
			t[k] = plainNumbers(e)
		}
	case []interface{}:
		for i, e := range t {
			t[i] = plainNumbers(e)
		}
	}
	return v
}
