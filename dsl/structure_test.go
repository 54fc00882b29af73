package dsl_test

import (
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/dsl"
	"github.com/shapecheck/shapecheck/kind"
)

func TestStructure_NoAlternation(t *testing.T) {
	d := dsl.Structure(shapecheck.Required)
	if !d.Validate(map[string]any{"anything": 1}) {
		t.Fatalf("empty alternation group means any object passes")
	}
	if d.Validate([]any{}) {
		t.Fatalf("array must fail the object gate")
	}
	if d.Validate(nil) {
		t.Fatalf("null must fail the object gate")
	}
}

func TestStructure_AnyOf(t *testing.T) {
	a := shapecheck.NewBuilder().
		Field("kind", dsl.Text(shapecheck.Required)).
		Field("a", dsl.Number(shapecheck.Required)).
		MustBuild()
	b := shapecheck.NewBuilder().
		Field("kind", dsl.Text(shapecheck.Required)).
		Field("b", dsl.Number(shapecheck.Required)).
		MustBuild()
	d := dsl.Structure(shapecheck.Required, a, b)

	if !d.Validate(map[string]any{"kind": "x", "a": 1}) {
		t.Fatalf("first alternative should accept")
	}
	if !d.Validate(map[string]any{"kind": "x", "b": 2}) {
		t.Fatalf("second alternative should accept")
	}
	if d.Validate(map[string]any{"kind": "x", "c": 3}) {
		t.Fatalf("no alternative matches, must reject")
	}
}

func TestStructure_OptionalAbsence(t *testing.T) {
	inner := shapecheck.NewBuilder().
		Field("id", dsl.Text(shapecheck.Required)).
		MustBuild()
	d := dsl.Structure(shapecheck.Optional, inner)
	if !d.Validate(kind.Absent) {
		t.Fatalf("optional absence should pass without consulting alternatives")
	}
	if d.Validate(map[string]any{}) {
		t.Fatalf("a present object must still match an alternative")
	}
}
