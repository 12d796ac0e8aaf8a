package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

func bitSig(name, second string) ir.Signature {
	return sig(name, numberResult, req("x", category.Number), req(second, category.Number))
}

var (
	bitAndSig    = bitSig("BITAND", "y")
	bitOrSig     = bitSig("BITOR", "y")
	bitXorSig    = bitSig("BITXOR", "y")
	bitLShiftSig = bitSig("BITLSHIFT", "n")
	bitRShiftSig = bitSig("BITRSHIFT", "n")
)

var bitopSignatures = []ir.Signature{bitAndSig, bitOrSig, bitXorSig, bitLShiftSig, bitRShiftSig}

// BitAnd returns the bitwise AND of x and y.
func BitAnd(x, y ir.Value) (*ir.Call, error) { return bitAndSig.Call(ir.Args(x, y)...) }

// BitOr returns the bitwise OR of x and y.
func BitOr(x, y ir.Value) (*ir.Call, error) { return bitOrSig.Call(ir.Args(x, y)...) }

// BitXor returns the bitwise exclusive OR of x and y.
func BitXor(x, y ir.Value) (*ir.Call, error) { return bitXorSig.Call(ir.Args(x, y)...) }

// BitLShift shifts x left by n bits.
func BitLShift(x, n ir.Value) (*ir.Call, error) { return bitLShiftSig.Call(ir.Args(x, n)...) }

// BitRShift shifts x right by n bits.
func BitRShift(x, n ir.Value) (*ir.Call, error) { return bitRShiftSig.Call(ir.Args(x, n)...) }
