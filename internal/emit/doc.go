// Package emit turns formula trees into OpenDocument formula text.
//
// Emission is a depth-first walk over the sealed ir.Value node set. It never
// inserts parentheses or whitespace; grouping is whatever the tree says.
// Every tree built through the ir constructors emits successfully, so Write
// and Expression have no error return. Formula is the single entry point
// that adds the "of=" prologue and validates the root.
package emit
