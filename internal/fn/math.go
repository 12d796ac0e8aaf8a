package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	absSig        = sig("ABS", numberResult, req("number", category.Number))
	cosSig        = sig("COS", numberResult, req("number", category.Number))
	countSig      = sig("COUNT", numberResult, rest("values", category.Sequence))
	sumSig        = sig("SUM", numberResult, rest("values", category.Sequence))
	sumProductSig = sig("SUMPRODUCT", numberResult, rest("arrays", category.Sequence))
	piSig         = sig("PI", numberResult)
	subtotalSig   = sig("SUBTOTAL", numberResult,
		req("function", category.Number),
		rest("values", category.Sequence),
	)
	convertSig = sig("CONVERT", numberResult,
		req("number", category.Number),
		req("from", category.Text),
		req("to", category.Text),
	)
	modSig   = sig("MOD", numberResult, req("dividend", category.Number), req("divisor", category.Number))
	powerSig = sig("POWER", numberResult, req("base", category.Number), req("exponent", category.Number))
	sqrtSig  = sig("SQRT", numberResult, req("number", category.Number))
)

var mathSignatures = []ir.Signature{
	absSig, cosSig, countSig, sumSig, sumProductSig, piSig, subtotalSig, convertSig,
	modSig, powerSig, sqrtSig,
}

// Abs returns the absolute value.
func Abs(n ir.Value) (*ir.Call, error) { return absSig.Call(ir.Args(n)...) }

// Cos returns the cosine of an angle in radians.
func Cos(n ir.Value) (*ir.Call, error) { return cosSig.Call(ir.Args(n)...) }

// Count counts the numbers in the given sequences.
func Count(values ...ir.Value) (*ir.Call, error) { return countSig.Call(ir.Args(values...)...) }

// Sum adds the numbers in the given sequences.
func Sum(values ...ir.Value) (*ir.Call, error) { return sumSig.Call(ir.Args(values...)...) }

// SumProduct multiplies corresponding entries and sums the products.
func SumProduct(arrays ...ir.Value) (*ir.Call, error) {
	return sumProductSig.Call(ir.Args(arrays...)...)
}

// Pi returns 3.14159...
func Pi() (*ir.Call, error) { return piSig.Call() }

// Mod returns the remainder of dividend / divisor.
func Mod(dividend, divisor ir.Value) (*ir.Call, error) {
	return modSig.Call(ir.Args(dividend, divisor)...)
}

// Power returns base raised to exponent.
func Power(base, exponent ir.Value) (*ir.Call, error) {
	return powerSig.Call(ir.Args(base, exponent)...)
}

// Sqrt returns the square root.
func Sqrt(n ir.Value) (*ir.Call, error) { return sqrtSig.Call(ir.Args(n)...) }

// SubtotalFunction selects the aggregate SUBTOTAL applies.
type SubtotalFunction int

const (
	SubtotalAverage SubtotalFunction = iota + 1
	SubtotalCount
	SubtotalCountA
	SubtotalMax
	SubtotalMin
	SubtotalProduct
	SubtotalStDev
	SubtotalStDevP
	SubtotalSum
	SubtotalVar
	SubtotalVarP
)

// Code returns the SUBTOTAL function code. Codes above 100 also skip rows
// hidden by collapsing.
func (f SubtotalFunction) Code(excludeHidden bool) ir.Int {
	if excludeHidden {
		return ir.Int(f) + 100
	}
	return ir.Int(f)
}

// Subtotal aggregates values with f, ignoring nested subtotals.
func Subtotal(f SubtotalFunction, excludeHidden bool, values ...ir.Value) (*ir.Call, error) {
	args := append([]ir.Value{f.Code(excludeHidden)}, values...)
	return subtotalSig.Call(ir.Args(args...)...)
}

// Unit is a CONVERT unit name, optionally carrying a prefix.
type Unit string

// A subset of the CONVERT base units.
const (
	UnitMeter        Unit = "m"
	UnitFoot         Unit = "ft"
	UnitInch         Unit = "in"
	UnitMile         Unit = "mi"
	UnitNauticalMile Unit = "Nmi"
	UnitYard         Unit = "yd"
	UnitGram         Unit = "g"
	UnitLbm          Unit = "lbm"
	UnitSecond       Unit = "sec"
	UnitMinute       Unit = "min"
	UnitHour         Unit = "hr"
	UnitDay          Unit = "day"
	UnitYear         Unit = "yr"
	UnitCelsius      Unit = "C"
	UnitFahrenheit   Unit = "F"
	UnitKelvin       Unit = "K"
	UnitJoule        Unit = "J"
	UnitCalorie      Unit = "cal"
	UnitWatt         Unit = "W"
	UnitHorsepower   Unit = "HP"
	UnitPascal       Unit = "Pa"
	UnitAtmosphere   Unit = "atm"
	UnitLiter        Unit = "l"
	UnitGallon       Unit = "gal"
	UnitBit          Unit = "bit"
	UnitByte         Unit = "byte"
	UnitHectare      Unit = "ha"
	UnitSqMeter      Unit = "m2"
	UnitCbMeter      Unit = "m3"
	UnitKnot         Unit = "kn"
	UnitMPH          Unit = "mph"
)

// Prefix is a decimal or binary CONVERT prefix.
type Prefix string

const (
	PrefixGiga  Prefix = "G"
	PrefixMega  Prefix = "M"
	PrefixKilo  Prefix = "k"
	PrefixHecto Prefix = "h"
	PrefixDeci  Prefix = "d"
	PrefixCenti Prefix = "c"
	PrefixMilli Prefix = "m"
	PrefixMicro Prefix = "u"
	PrefixNano  Prefix = "n"
	PrefixKibi  Prefix = "Ki"
	PrefixMebi  Prefix = "Mi"
	PrefixGibi  Prefix = "Gi"
)

// WithPrefix returns u scaled by p, e.g. PrefixKilo + UnitMeter is "km".
func (u Unit) WithPrefix(p Prefix) Unit {
	return Unit(string(p) + string(u))
}

// Convert converts n from one unit to another.
func Convert(n ir.Value, from, to Unit) (*ir.Call, error) {
	return convertSig.Call(ir.Args(n, ir.Text(from), ir.Text(to))...)
}
