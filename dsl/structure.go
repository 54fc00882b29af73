package dsl

import (
	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/kind"
)

// StructureDescriptor validates object-shaped values, optionally against an
// "any of" group of alternative schemas. Each alternative is evaluated over
// the entire candidate object; an empty group means any object passes.
type StructureDescriptor struct {
	base  shapecheck.Base
	anyOf []*shapecheck.Schema
}

// Structure returns an object descriptor. The given schemas form the
// alternation group.
func Structure(p shapecheck.Presence, anyOf ...*shapecheck.Schema) *StructureDescriptor {
	return &StructureDescriptor{
		base:  shapecheck.Base{Type: kind.Object, Presence: p},
		anyOf: anyOf,
	}
}

// AnyOf appends alternatives to the alternation group.
func (d *StructureDescriptor) AnyOf(schemas ...*shapecheck.Schema) *StructureDescriptor {
	d.anyOf = append(d.anyOf, schemas...)
	return d
}

func (d *StructureDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	if len(d.anyOf) == 0 {
		return true
	}
	for _, s := range d.anyOf {
		if s != nil && s.Validate(v) {
			return true
		}
	}
	return false
}
