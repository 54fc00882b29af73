package dsl

import (
	"math"
	"math/big"
	"regexp"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/kind"
)

// TextDescriptor validates string values with an optional allow-list or
// pattern refinement. The two are mutually exclusive: once a pattern is
// configured, any allow-list is inert.
type TextDescriptor struct {
	base    shapecheck.Base
	allowed []string
	pattern *regexp.Regexp
}

// Text returns a string descriptor.
func Text(p shapecheck.Presence) *TextDescriptor {
	return &TextDescriptor{base: shapecheck.Base{Type: kind.String, Presence: p}}
}

// Enum restricts accepted values to the given literals.
func (d *TextDescriptor) Enum(vals ...string) *TextDescriptor {
	d.allowed = append(d.allowed, vals...)
	return d
}

// Pattern requires accepted values to match re. The pattern wins over any
// configured allow-list.
func (d *TextDescriptor) Pattern(re *regexp.Regexp) *TextDescriptor {
	d.pattern = re
	return d
}

func (d *TextDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	s := stringValue(v)
	if d.pattern != nil {
		return d.pattern.MatchString(s)
	}
	if len(d.allowed) > 0 {
		return member(d.allowed, s)
	}
	return true
}

// NumberDescriptor validates numeric values with no refinement beyond the
// shared gate and an optional allow-list.
type NumberDescriptor struct {
	base    shapecheck.Base
	allowed []float64
}

// Number returns a number descriptor.
func Number(p shapecheck.Presence) *NumberDescriptor {
	return &NumberDescriptor{base: shapecheck.Base{Type: kind.Number, Presence: p}}
}

// Enum restricts accepted values to the given literals, compared by numeric
// value so 3, 3.0 and json.Number("3") agree.
func (d *NumberDescriptor) Enum(vals ...float64) *NumberDescriptor {
	d.allowed = append(d.allowed, vals...)
	return d
}

func (d *NumberDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	f, okv := numberValue(v)
	if !okv {
		return false
	}
	if len(d.allowed) > 0 {
		return member(d.allowed, f)
	}
	return true
}

// IntegerDescriptor validates numeric values that carry no fractional
// component. The integer refinement applies whenever a value is present,
// independent of optionality; optionality only lets the absence value
// through.
type IntegerDescriptor struct {
	base    shapecheck.Base
	allowed []int64
}

// Integer returns an integer descriptor.
func Integer(p shapecheck.Presence) *IntegerDescriptor {
	return &IntegerDescriptor{base: shapecheck.Base{Type: kind.Number, Presence: p}}
}

// Enum restricts accepted values to the given literals.
func (d *IntegerDescriptor) Enum(vals ...int64) *IntegerDescriptor {
	d.allowed = append(d.allowed, vals...)
	return d
}

func (d *IntegerDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	f, okv := numberValue(v)
	if !okv {
		return false
	}
	if len(d.allowed) > 0 {
		hit := false
		for _, a := range d.allowed {
			if f == float64(a) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

// BigIntDescriptor validates *big.Int / big.Int values.
type BigIntDescriptor struct {
	base    shapecheck.Base
	allowed []*big.Int
}

// BigInt returns a big-integer descriptor.
func BigInt(p shapecheck.Presence) *BigIntDescriptor {
	return &BigIntDescriptor{base: shapecheck.Base{Type: kind.BigInt, Presence: p}}
}

// Enum restricts accepted values to the given literals, compared with Cmp.
func (d *BigIntDescriptor) Enum(vals ...*big.Int) *BigIntDescriptor {
	d.allowed = append(d.allowed, vals...)
	return d
}

func (d *BigIntDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	n := bigintValue(v)
	if n == nil {
		return false
	}
	if len(d.allowed) > 0 {
		for _, a := range d.allowed {
			if a != nil && a.Cmp(n) == 0 {
				return true
			}
		}
		return false
	}
	return true
}

// BoolDescriptor validates boolean values.
type BoolDescriptor struct {
	base    shapecheck.Base
	allowed []bool
}

// Bool returns a boolean descriptor.
func Bool(p shapecheck.Presence) *BoolDescriptor {
	return &BoolDescriptor{base: shapecheck.Base{Type: kind.Boolean, Presence: p}}
}

// Enum restricts accepted values to the given literals.
func (d *BoolDescriptor) Enum(vals ...bool) *BoolDescriptor {
	d.allowed = append(d.allowed, vals...)
	return d
}

func (d *BoolDescriptor) Validate(v any) bool {
	ok, done := d.base.Accept(v)
	if !ok {
		return false
	}
	if done {
		return true
	}
	if len(d.allowed) > 0 {
		return member(d.allowed, boolValue(v))
	}
	return true
}

// AbsentDescriptor accepts only the absence value: its declared type is
// "undefined" itself, so the optionality gate is redundant here.
type AbsentDescriptor struct {
	base shapecheck.Base
}

// Absent returns an absence descriptor.
func Absent() *AbsentDescriptor {
	return &AbsentDescriptor{base: shapecheck.Base{Type: kind.Undefined, Presence: shapecheck.Required}}
}

func (d *AbsentDescriptor) Validate(v any) bool {
	ok, _ := d.base.Accept(v)
	return ok
}

// FuncDescriptor validates function values.
type FuncDescriptor struct {
	base shapecheck.Base
}

// Func returns a function descriptor.
func Func(p shapecheck.Presence) *FuncDescriptor {
	return &FuncDescriptor{base: shapecheck.Base{Type: kind.Function, Presence: p}}
}

func (d *FuncDescriptor) Validate(v any) bool {
	ok, _ := d.base.Accept(v)
	return ok
}

// SequenceDescriptor validates array-shaped values. Element-wise typing of
// the contents is a noted limitation, not a bug.
type SequenceDescriptor struct {
	base shapecheck.Base
}

// Sequence returns an array descriptor.
func Sequence(p shapecheck.Presence) *SequenceDescriptor {
	return &SequenceDescriptor{base: shapecheck.Base{Type: kind.Array, Presence: p}}
}

func (d *SequenceDescriptor) Validate(v any) bool {
	ok, _ := d.base.Accept(v)
	return ok
}

// AnyDescriptor accepts every classification; it exists for polymorphic
// positions such as alternation members.
type AnyDescriptor struct {
	base shapecheck.Base
}

// Any returns a wildcard descriptor.
func Any(p shapecheck.Presence) *AnyDescriptor {
	return &AnyDescriptor{base: shapecheck.Base{Type: kind.Any, Presence: p}}
}

func (d *AnyDescriptor) Validate(v any) bool {
	ok, _ := d.base.Accept(v)
	return ok
}
