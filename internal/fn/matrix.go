package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	mDetermSig   = sig("MDETERM", numberResult, req("matrix", category.Matrix))
	mInverseSig  = sig("MINVERSE", matrixResult, req("matrix", category.Matrix))
	mMultSig     = sig("MMULT", matrixResult, req("a", category.Matrix), req("b", category.Matrix))
	mUnitSig     = sig("MUNIT", matrixResult, req("size", category.Number))
	transposeSig = sig("TRANSPOSE", matrixResult, req("matrix", category.Matrix))
)

var matrixSignatures = []ir.Signature{mDetermSig, mInverseSig, mMultSig, mUnitSig, transposeSig}

// MDeterm returns the determinant of a square matrix.
func MDeterm(m ir.Value) (*ir.Call, error) { return mDetermSig.Call(ir.Args(m)...) }

// MInverse returns the inverse of a square matrix.
func MInverse(m ir.Value) (*ir.Call, error) { return mInverseSig.Call(ir.Args(m)...) }

// MMult returns the matrix product a·b.
func MMult(a, b ir.Value) (*ir.Call, error) { return mMultSig.Call(ir.Args(a, b)...) }

// MUnit returns the size×size identity matrix.
func MUnit(size ir.Value) (*ir.Call, error) { return mUnitSig.Call(ir.Args(size)...) }

// Transpose swaps rows and columns.
func Transpose(m ir.Value) (*ir.Call, error) { return transposeSig.Call(ir.Args(m)...) }
