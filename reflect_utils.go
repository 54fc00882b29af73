package shapecheck

import (
	"reflect"
	"strings"

	"github.com/shapecheck/shapecheck/kind"
)

// fieldValue looks up name on an object-shaped candidate. A key that is not
// there yields kind.Absent, which is distinct from a key that is present
// with a nil value. map[string]any is the fast path; other string-keyed
// maps and structs go through reflection.
func fieldValue(v any, name string) any {
	if m, ok := v.(map[string]any); ok {
		if fv, ok := m[name]; ok {
			return fv
		}
		return kind.Absent
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return kind.Absent
		}
		fv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !fv.IsValid() {
			return kind.Absent
		}
		return fv.Interface()
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			key := resolveStructKey(sf)
			if key == "-" {
				continue
			}
			if key == name {
				return rv.Field(i).Interface()
			}
		}
	}
	return kind.Absent
}

// resolveStructKey resolves a struct field's external key.
// Priority: json tag name > field name; "-" disables the field.
func resolveStructKey(sf reflect.StructField) string {
	jt := sf.Tag.Get("json")
	if jt == "" {
		return sf.Name
	}
	if jt == "-" {
		return "-"
	}
	if i := strings.IndexByte(jt, ','); i >= 0 {
		if i == 0 {
			return sf.Name
		}
		return jt[:i]
	}
	return jt
}
