// Package source decodes candidate payloads into the runtime value shapes
// the engine classifies: map[string]any objects, []any arrays, and scalar
// Go values. Schemas themselves are never parsed from a serialized form.
package source

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSON decodes a JSON document. Numbers are preserved as json.Number so the
// engine can apply integer strictness without float rounding.
func JSON(data []byte) (any, error) {
	return JSONReader(bytes.NewReader(data))
}

// JSONReader is JSON over an io.Reader.
func JSONReader(r io.Reader) (any, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAML decodes a YAML document. yaml.v3 yields map[string]any for mappings
// and native Go ints/floats for numbers, all of which classify as expected.
func YAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
