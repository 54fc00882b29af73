// Package dsl holds the descriptor constructors: one per primitive kind,
// each taking the canonical shapecheck.Presence marker plus light chaining
// for kind-specific configuration (allow-lists, a text pattern, structure
// alternation). Constructed descriptors are treated as read-only and reused
// across validation calls.
package dsl
