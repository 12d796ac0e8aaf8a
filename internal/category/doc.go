// Package category defines the capability lattice of formula values.
//
// Every formula value declares a set of categories (Number, Text, Logical,
// Reference, ...). A category gates which argument positions a value may
// occupy. Categories subsume each other: a Reference can stand wherever a
// Number, Text or Matrix is expected, a Number wherever a Logical is
// expected, and so on. Of returns the transitive closure of that table.
//
// This package is metadata only. It imports nothing internal; ir builds on it.
package category
