// Package kind classifies arbitrary runtime values into a closed set of
// primitive type tags. It deliberately distinguishes "array" and "null"
// from the generic "object" tag, and the absence of a value (a missing
// object key, represented by Absent) from an explicit null.
package kind

import (
	"encoding/json"
	"errors"
	"math/big"
	"reflect"
)

// Tag is one of a fixed set of primitive classifications.
type Tag string

const (
	String    Tag = "string"
	Number    Tag = "number"
	BigInt    Tag = "bigint"
	Boolean   Tag = "boolean"
	Symbol    Tag = "symbol"
	Undefined Tag = "undefined"
	Object    Tag = "object"
	Function  Tag = "function"
	Array     Tag = "array"
	Null      Tag = "null"

	// Any is a wildcard for polymorphic positions. Of never produces it;
	// membership checks treat it as matching every tag.
	Any Tag = "any"
)

// ErrInvalidArgument reports a malformed allowed-tag set. It is a usage
// error raised to the caller, never a silent false.
var ErrInvalidArgument = errors.New("kind: invalid argument")

type absent struct{}

// Absent stands in for a value that is not there at all, as opposed to an
// explicit null. Field lookups on schema candidates yield Absent for
// missing keys; Of(Absent) reports Undefined.
var Absent any = absent{}

// IsAbsent reports whether v is the absence value.
func IsAbsent(v any) bool { _, ok := v.(absent); return ok }

// Of classifies v. Slices and arrays report Array, never Object; nil
// reports Null; the absence value reports Undefined. Symbol is reserved
// (Go has no symbol primitive) and is never produced.
func Of(v any) Tag {
	switch v.(type) {
	case nil:
		return Null
	case absent:
		return Undefined
	case string:
		return String
	case bool:
		return Boolean
	case json.Number:
		return Number
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return Number
	case *big.Int, big.Int:
		return BigInt
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Func:
		if rv.IsNil() {
			return Null
		}
		return Function
	case reflect.Map, reflect.Struct:
		return Object
	case reflect.Pointer:
		if rv.IsNil() {
			return Null
		}
		return Of(rv.Elem().Interface())
	case reflect.String:
		return String
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	}
	return Object
}

// Is reports whether v's tag is a member of allowed. A nil set is an
// ErrInvalidArgument; an empty set is a valid set that nothing belongs to.
func Is(v any, allowed []Tag) (bool, error) {
	if allowed == nil {
		return false, ErrInvalidArgument
	}
	return member(Of(v), allowed), nil
}

// OfAll classifies every value in vs.
func OfAll(vs []any) []Tag {
	out := make([]Tag, len(vs))
	for i, v := range vs {
		out[i] = Of(v)
	}
	return out
}

// AllIn reports whether every value's tag is a member of allowed,
// stopping at the first miss. A nil set is an ErrInvalidArgument.
func AllIn(vs []any, allowed []Tag) (bool, error) {
	if allowed == nil {
		return false, ErrInvalidArgument
	}
	for _, v := range vs {
		if !member(Of(v), allowed) {
			return false, nil
		}
	}
	return true, nil
}

func member(t Tag, allowed []Tag) bool {
	for _, a := range allowed {
		if a == Any || a == t {
			return true
		}
	}
	return false
}
