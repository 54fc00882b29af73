package shapecheck

import "fmt"

// Presence marks a descriptor as required or optional. An optional
// descriptor accepts the absence value regardless of its declared type.
type Presence int

const (
	Required Presence = iota
	Optional
)

// String implements fmt.Stringer.
func (p Presence) String() string {
	if p == Optional {
		return "optional"
	}
	return "required"
}

// ParsePresence converts the single-character sugar tokens of earlier
// iterations of this design. The canonical mapping is "?" -> Optional and
// "!" -> Required; any other token is an ErrInvalidArgument. Constructors
// accept only the Presence form.
func ParsePresence(tok string) (Presence, error) {
	switch tok {
	case "?":
		return Optional, nil
	case "!":
		return Required, nil
	}
	return Required, fmt.Errorf("%w: presence token %q", ErrInvalidArgument, tok)
}
