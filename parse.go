package shapecheck

import "github.com/shapecheck/shapecheck/source"

// ValidateJSON decodes a JSON payload and validates it against s. A payload
// that does not decode counts as non-conformance: "is this data valid" stays
// a total function. Only the candidate value is decoded here; schemas are
// never parsed from a serialized form.
func ValidateJSON(s *Schema, data []byte) bool {
	v, err := source.JSON(data)
	if err != nil {
		return false
	}
	return s.Validate(v)
}

// ValidateYAML is ValidateJSON for YAML payloads.
func ValidateYAML(s *Schema, data []byte) bool {
	v, err := source.YAML(data)
	if err != nil {
		return false
	}
	return s.Validate(v)
}
