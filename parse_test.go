package shapecheck_test

import (
	"testing"

	shapecheck "github.com/shapecheck/shapecheck"
	"github.com/shapecheck/shapecheck/dsl"
)

func TestValidateJSON(t *testing.T) {
	s := shapecheck.NewBuilder().
		Field("name", dsl.Text(shapecheck.Required)).
		Field("age", dsl.Integer(shapecheck.Required)).
		MustBuild()

	if !shapecheck.ValidateJSON(s, []byte(`{"name":"Alice","age":30}`)) {
		t.Fatalf("conforming payload should pass")
	}
	if shapecheck.ValidateJSON(s, []byte(`{"name":"Alice","age":30.5}`)) {
		t.Fatalf("fractional age must fail integer strictness")
	}
	if shapecheck.ValidateJSON(s, []byte(`{"name":"Alice"}`)) {
		t.Fatalf("missing required field must fail")
	}
	if shapecheck.ValidateJSON(s, []byte(`[1,2,3]`)) {
		t.Fatalf("non-object payload must fail")
	}
	// malformed payload degrades to false, never an error
	if shapecheck.ValidateJSON(s, []byte(`{"name":`)) {
		t.Fatalf("malformed payload must fail")
	}
}

func TestValidateJSON_NullVsMissing(t *testing.T) {
	s := shapecheck.NewBuilder().
		Field("nick", dsl.Text(shapecheck.Optional)).
		MustBuild()
	if !shapecheck.ValidateJSON(s, []byte(`{}`)) {
		t.Fatalf("missing optional field should pass")
	}
	if shapecheck.ValidateJSON(s, []byte(`{"nick":null}`)) {
		t.Fatalf("explicit null is not absence and must fail a string descriptor")
	}
}

func TestValidateYAML(t *testing.T) {
	s := shapecheck.NewBuilder().
		Field("name", dsl.Text(shapecheck.Required)).
		Field("age", dsl.Integer(shapecheck.Required)).
		MustBuild()

	if !shapecheck.ValidateYAML(s, []byte("name: Alice\nage: 30\n")) {
		t.Fatalf("conforming payload should pass")
	}
	if shapecheck.ValidateYAML(s, []byte("name: Alice\nage: 30.5\n")) {
		t.Fatalf("fractional age must fail")
	}
	if shapecheck.ValidateYAML(s, []byte("name: Alice\n")) {
		t.Fatalf("missing required field must fail")
	}
	if shapecheck.ValidateYAML(s, []byte("::not yaml::")) {
		t.Fatalf("malformed payload must fail")
	}
}
