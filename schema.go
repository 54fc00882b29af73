package shapecheck

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/shapecheck/shapecheck/kind"
)

// Schema is an ordered mapping from field name to Descriptor. A Schema is
// itself a Descriptor, which is what lets raw nested mappings normalize
// into nested schemas and lets alternation groups nest schemas under a
// structure descriptor. Schemas are immutable after construction and safe
// for concurrent validation.
type Schema struct {
	fields *orderedmap.OrderedMap[string, Descriptor]
}

var _ Descriptor = (*Schema)(nil)

// New builds a Schema from a raw definition. Every entry must be a
// Descriptor or a plain map[string]any; plain maps are wrapped into nested
// Schemas recursively, once, at construction time. Anything else (and a nil
// definition) is an ErrInvalidSchema. The input map is never mutated; keys
// are taken in sorted order because Go maps carry no order of their own —
// use Builder when field order matters.
func New(def map[string]any) (*Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: definition must be a non-nil mapping", ErrInvalidSchema)
	}
	names := make([]string, 0, len(def))
	for name := range def {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := orderedmap.New[string, Descriptor]()
	for _, name := range names {
		d, err := normalizeEntry(name, def[name])
		if err != nil {
			return nil, err
		}
		fields.Set(name, d)
	}
	return &Schema{fields: fields}, nil
}

// MustNew is New panicking on a malformed definition.
func MustNew(def map[string]any) *Schema {
	s, err := New(def)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeEntry(name string, v any) (Descriptor, error) {
	switch t := v.(type) {
	case map[string]any:
		return New(t)
	case Descriptor:
		return t, nil
	}
	return nil, fmt.Errorf("%w: field %q is neither a descriptor nor a nested mapping", ErrInvalidSchema, name)
}

// Builder assembles a Schema preserving field insertion order.
type Builder struct {
	fields *orderedmap.OrderedMap[string, Descriptor]
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{fields: orderedmap.New[string, Descriptor]()}
}

// Field registers a field. Re-registering a name replaces the descriptor in
// place, keeping the field's original position.
func (b *Builder) Field(name string, d Descriptor) *Builder {
	if d == nil {
		b.err = fmt.Errorf("%w: field %q has no descriptor", ErrInvalidSchema, name)
		return b
	}
	b.fields.Set(name, d)
	return b
}

// Nested registers a field whose value must match a nested raw definition,
// normalized the same way New normalizes it.
func (b *Builder) Nested(name string, def map[string]any) *Builder {
	s, err := New(def)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	return b.Field(name, s)
}

// Build returns the assembled Schema, or the first construction error.
func (b *Builder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Schema{fields: b.fields}, nil
}

// MustBuild is Build panicking on a malformed definition.
func (b *Builder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Len reports the number of fields.
func (s *Schema) Len() int { return s.fields.Len() }

// Validate reports whether v conforms to the schema: v must classify as an
// object, and every field's descriptor must accept the looked-up value
// (missing keys yield the absence value). The walk short-circuits on the
// first failing field. Validate never panics out to the caller; a fault
// during the walk counts as non-conformance.
func (s *Schema) Validate(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if kind.Of(v) != kind.Object {
		return false
	}
	for pair := s.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Validate(fieldValue(v, pair.Key)) {
			return false
		}
	}
	return true
}
