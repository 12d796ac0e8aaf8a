// Package doc loads formula documents and builds them into expression trees.
//
// A document is a YAML or CUE file naming a list of formulas. Each formula
// carries an expression tree written as nested single-key maps:
//
//	name: budget
//	formulas:
//	  - name: total
//	    expr:
//	      call:
//	        name: SUM
//	        args: [{range: {from: F5, to: J9}}]
//
// Loading is strict: unknown keys are errors. Building goes through the
// same validating constructors host code uses, so a document can express
// exactly the trees the ir package admits.
package doc
