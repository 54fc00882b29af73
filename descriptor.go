package shapecheck

import "github.com/shapecheck/shapecheck/kind"

// Descriptor decides whether a single value conforms to a declared shape.
// Descriptors are immutable once constructed and safe for concurrent use;
// Validate is a pure function of the value.
type Descriptor interface {
	Validate(v any) bool
}

// Base carries the type and optionality gate shared by every descriptor
// kind. Allow-lists and refinements are layered on top by each kind and run
// only after the gate passes.
type Base struct {
	Type     kind.Tag
	Presence Presence
}

// Accept runs the shared gate. ok reports whether v cleared it; done
// reports that v was accepted as an optional absence, in which case no
// further checking (allow-list, refinement) applies. An optional absence is
// accepted before any other rule, so an allow-list never rejects it. The
// wildcard kind.Any matches every classification, including the absence
// value.
func (b Base) Accept(v any) (ok, done bool) {
	t := kind.Of(v)
	if b.Presence == Optional && t == kind.Undefined {
		return true, true
	}
	if b.Type == kind.Any {
		return true, false
	}
	return t == b.Type, false
}
