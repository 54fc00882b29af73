package shapecheck

// Package shapecheck provides:
//
// - A declarative descriptor model for the expected shape of runtime values
//   (primitive type, optionality, literal allow-lists, pattern constraints)
// - Recursive Schema composition with eager normalization of nested raw
//   mappings and "any of" alternation groups
// - A never-throwing Validate(value) -> bool decision procedure
// - Type introspection under kind/ that tells array and null apart from the
//   generic object tag
//
// Design policy:
// - Keep only public APIs in the root package; descriptor constructors live
//   under dsl/, payload decoding under source/.
// - Construction-time failures (ErrInvalidSchema, ErrInvalidArgument) are
//   programmer errors and propagate; validation outcomes are plain booleans.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := shapecheck.NewBuilder().
//		Field("name", dsl.Text(shapecheck.Required)).
//		Field("age", dsl.Integer(shapecheck.Required)).
//		MustBuild()
//
//	ok := s.Validate(map[string]any{"name": "Alice", "age": 30})
//	ok = shapecheck.ValidateJSON(s, payload)
