// Package ir provides the typed expression tree for spreadsheet formulas.
//
// This package contains value and node definitions only. Text emission lives
// in internal/emit; ir imports nothing internal except category. This keeps
// the tree as the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Value is a sealed interface; only this package implements it
//   - Every node is immutable; composite fields are unexported and the only
//     way to obtain a node is a validating constructor
//   - A node's category set is a pure function of its children's sets and
//     the operator contract
//   - Invalid compositions fail at construction with a *BuildError, never
//     at emission time
//   - Omitted is an argument slot (Arg), not a Value, so it cannot appear
//     outside a call's argument list
package ir
