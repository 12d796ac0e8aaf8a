package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	andSig = sig("AND", logicalResult, rest("values", category.Sequence))
	orSig  = sig("OR", logicalResult, rest("values", category.Sequence))
	xorSig = sig("XOR", logicalResult, rest("values", category.Sequence))
	notSig = sig("NOT", logicalResult, req("value", category.Logical))
	ifSig  = sig("IF", anyResult,
		req("condition", category.Logical),
		opt("then", 0),
		opt("else", 0),
	)
	ifErrorSig = sig("IFERROR", anyResult, req("value", 0), req("alternative", 0))
	ifNASig    = sig("IFNA", anyResult, req("value", 0), req("alternative", 0))
)

var logicalSignatures = []ir.Signature{andSig, orSig, xorSig, notSig, ifSig, ifErrorSig, ifNASig}

// And is TRUE when every value is TRUE.
func And(values ...ir.Value) (*ir.Call, error) { return andSig.Call(ir.Args(values...)...) }

// Or is TRUE when any value is TRUE.
func Or(values ...ir.Value) (*ir.Call, error) { return orSig.Call(ir.Args(values...)...) }

// Xor is TRUE when an odd number of values are TRUE.
func Xor(values ...ir.Value) (*ir.Call, error) { return xorSig.Call(ir.Args(values...)...) }

// Not negates a logical value.
func Not(v ir.Value) (*ir.Call, error) { return notSig.Call(ir.Args(v)...) }

// If picks then or otherwise by condition. Either branch may be nil:
// IF(c;;x) leaves the then-branch empty, IF(c;x) drops the else-branch.
func If(condition, then, otherwise ir.Value) (*ir.Call, error) {
	return ifSig.Call(ir.Provided{Value: condition}, ir.Opt(then), ir.Opt(otherwise))
}

// IfError returns alternative when v is an error.
func IfError(v, alternative ir.Value) (*ir.Call, error) {
	return ifErrorSig.Call(ir.Args(v, alternative)...)
}

// IfNA returns alternative when v is #N/A.
func IfNA(v, alternative ir.Value) (*ir.Call, error) {
	return ifNASig.Call(ir.Args(v, alternative)...)
}
