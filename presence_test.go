package shapecheck_test

import (
	"errors"
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
)

func TestParsePresence(t *testing.T) {
	if p, err := shapecheck.ParsePresence("?"); err != nil || p != shapecheck.Optional {
		t.Fatalf(`ParsePresence("?") = %v, %v; want Optional`, p, err)
	}
	if p, err := shapecheck.ParsePresence("!"); err != nil || p != shapecheck.Required {
		t.Fatalf(`ParsePresence("!") = %v, %v; want Required`, p, err)
	}
	for _, tok := range []string{"", "x", "??", "optional"} {
		if _, err := shapecheck.ParsePresence(tok); !errors.Is(err, shapecheck.ErrInvalidArgument) {
			t.Fatalf("ParsePresence(%q): want ErrInvalidArgument, got %v", tok, err)
		}
	}
}

func TestPresence_String(t *testing.T) {
	if shapecheck.Required.String() != "required" || shapecheck.Optional.String() != "optional" {
		t.Fatalf("unexpected Presence strings: %s / %s", shapecheck.Required, shapecheck.Optional)
	}
}
