package shapecheck

import (
	"errors"

	"github.com/shapecheck/shapecheck/kind"
)

// Construction-time conditions. Validation itself never returns an error:
// a candidate either conforms or it does not, and internal faults during a
// walk degrade to false.
var (
	// ErrInvalidSchema reports a malformed schema definition.
	ErrInvalidSchema = errors.New("shapecheck: invalid schema definition")

	// ErrInvalidArgument mirrors kind.ErrInvalidArgument for callers that
	// only import the root package.
	ErrInvalidArgument = kind.ErrInvalidArgument
)
