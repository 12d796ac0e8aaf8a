package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	concatenateSig = sig("CONCATENATE", textResult, rest("text", category.TextOrNumber))
	lenSig         = sig("LEN", numberResult, req("text", category.Text))
	upperSig       = sig("UPPER", textResult, req("text", category.Text))
	lowerSig       = sig("LOWER", textResult, req("text", category.Text))
	trimSig        = sig("TRIM", textResult, req("text", category.Text))
	textSig        = sig("TEXT", textResult, req("value", category.TextOrNumber), req("format", category.Text))
	leftSig        = sig("LEFT", textResult, req("text", category.Text), opt("length", category.Number))
	rightSig       = sig("RIGHT", textResult, req("text", category.Text), opt("length", category.Number))
	midSig         = sig("MID", textResult, req("text", category.Text), req("start", category.Number), req("length", category.Number))
)

var textSignatures = []ir.Signature{
	concatenateSig, lenSig, upperSig, lowerSig, trimSig, textSig, leftSig, rightSig, midSig,
}

// Concatenate joins its arguments into one string.
func Concatenate(values ...ir.Value) (*ir.Call, error) {
	return concatenateSig.Call(ir.Args(values...)...)
}

// Len returns the number of characters in text.
func Len(text ir.Value) (*ir.Call, error) { return lenSig.Call(ir.Args(text)...) }

// Upper converts text to upper case.
func Upper(text ir.Value) (*ir.Call, error) { return upperSig.Call(ir.Args(text)...) }

// Lower converts text to lower case.
func Lower(text ir.Value) (*ir.Call, error) { return lowerSig.Call(ir.Args(text)...) }

// Trim removes leading, trailing and repeated spaces.
func Trim(text ir.Value) (*ir.Call, error) { return trimSig.Call(ir.Args(text)...) }

// Text formats value with a number format code such as "0.00".
func Text(value ir.Value, format string) (*ir.Call, error) {
	return textSig.Call(ir.Args(value, ir.Text(format))...)
}

// Left returns the first length characters (1 when length is nil).
func Left(text, length ir.Value) (*ir.Call, error) {
	return leftSig.Call(ir.Provided{Value: text}, ir.Opt(length))
}

// Right returns the last length characters (1 when length is nil).
func Right(text, length ir.Value) (*ir.Call, error) {
	return rightSig.Call(ir.Provided{Value: text}, ir.Opt(length))
}

// Mid returns length characters starting at 1-based start.
func Mid(text, start, length ir.Value) (*ir.Call, error) {
	return midSig.Call(ir.Args(text, start, length)...)
}
