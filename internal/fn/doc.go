// Package fn provides typed wrappers for spreadsheet functions.
//
// Each wrapper forwards its arguments to a declared ir.Signature, so
// category and arity mistakes surface as *ir.BuildError at construction.
// The registry (Lookup, Overloads, Resolve, Names) exposes the same
// signatures by name for callers that only know the function name, such as
// formula documents.
//
// Optional arguments take a nil ir.Value to mean "omitted". Whether an
// omitted argument becomes an empty segment or disappears follows the
// call's position rules: only a trailing run is dropped.
package fn
