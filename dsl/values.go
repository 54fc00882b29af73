package dsl

import (
	"encoding/json"
	"math/big"
	"reflect"
)

// member reports allow-list membership using the element type's equality.
func member[T comparable](allowed []T, v T) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// stringValue extracts the string form of a value the classifier already
// gated as a string, covering named string types.
func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}

func boolValue(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return reflect.ValueOf(v).Bool()
}

// numberValue folds every numeric representation the classifier accepts
// into float64. ok is false when the textual form of a json.Number does not
// parse.
func numberValue(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// bigintValue unwraps *big.Int / big.Int, returning nil otherwise.
func bigintValue(v any) *big.Int {
	switch n := v.(type) {
	case *big.Int:
		return n
	case big.Int:
		return &n
	}
	return nil
}
