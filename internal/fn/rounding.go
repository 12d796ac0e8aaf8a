package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	ceilingSig = sig("CEILING", numberResult,
		req("number", category.Number),
		opt("significance", category.Number),
		opt("mode", category.Number),
	)
	floorSig = sig("FLOOR", numberResult,
		req("number", category.Number),
		opt("significance", category.Number),
		opt("mode", category.Number),
	)
	intSig   = sig("INT", numberResult, req("number", category.Number))
	roundSig = sig("ROUND", numberResult, req("number", category.Number), opt("digits", category.Number))
)

var roundingSignatures = []ir.Signature{ceilingSig, floorSig, intSig, roundSig}

// RoundingMode controls how CEILING and FLOOR treat negative numbers.
// RoundDefault leaves the argument out.
type RoundingMode int

const (
	RoundDefault RoundingMode = iota
	// RoundTowardsPlusInf rounds negative numbers towards zero for CEILING.
	RoundTowardsPlusInf
	// RoundAwayFromZero rounds negative numbers away from zero.
	RoundAwayFromZero
)

func (m RoundingMode) value() ir.Value {
	switch m {
	case RoundTowardsPlusInf:
		return ir.Int(0)
	case RoundAwayFromZero:
		return ir.Int(1)
	default:
		return nil
	}
}

// Ceiling rounds n up to a multiple of significance. A nil significance
// with an explicit mode leaves an empty slot: CEILING(n;;1).
func Ceiling(n, significance ir.Value, mode RoundingMode) (*ir.Call, error) {
	return ceilingSig.Call(ir.Provided{Value: n}, ir.Opt(significance), ir.Opt(mode.value()))
}

// Floor rounds n down to a multiple of significance.
func Floor(n, significance ir.Value, mode RoundingMode) (*ir.Call, error) {
	return floorSig.Call(ir.Provided{Value: n}, ir.Opt(significance), ir.Opt(mode.value()))
}

// Int rounds n down to the nearest integer.
func Int(n ir.Value) (*ir.Call, error) { return intSig.Call(ir.Args(n)...) }

// Round rounds n to digits decimal places (0 when digits is nil).
func Round(n, digits ir.Value) (*ir.Call, error) {
	return roundSig.Call(ir.Provided{Value: n}, ir.Opt(digits))
}
