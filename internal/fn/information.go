package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	cellSig = sig("CELL", anyResult,
		req("info", category.Text),
		opt("ref", category.Reference),
	)
	countASig     = sig("COUNTA", numberResult, rest("values", category.Sequence))
	countBlankSig = sig("COUNTBLANK", numberResult, req("range", category.Reference))
	isBlankSig    = sig("ISBLANK", logicalResult, req("value", 0))
	isErrorSig    = sig("ISERROR", logicalResult, req("value", 0))
	isNumberSig   = sig("ISNUMBER", logicalResult, req("value", 0))
	rowSig        = sig("ROW", numberResult, opt("ref", category.Reference))
	columnSig     = sig("COLUMN", numberResult, opt("ref", category.Reference))
	rowsSig       = sig("ROWS", numberResult, req("ref", category.Reference))
	columnsSig    = sig("COLUMNS", numberResult, req("ref", category.Reference))
	areasSig      = sig("AREAS", numberResult, req("ref", category.Reference))
	formulaSig    = sig("FORMULA", textResult, req("ref", category.Reference))
	errorTypeSig  = sig("ERROR.TYPE", numberResult, req("value", 0))
)

var informationSignatures = []ir.Signature{
	cellSig, countASig, countBlankSig, isBlankSig, isErrorSig, isNumberSig,
	rowSig, columnSig, rowsSig, columnsSig, areasSig, formulaSig, errorTypeSig,
}

// CellInfo names the property CELL reports.
type CellInfo string

const (
	CellCol      CellInfo = "COL"
	CellRow      CellInfo = "ROW"
	CellSheet    CellInfo = "SHEET"
	CellAddress  CellInfo = "ADDRESS"
	CellFilename CellInfo = "FILENAME"
	CellContents CellInfo = "CONTENTS"
	CellColor    CellInfo = "COLOR"
	CellFormat   CellInfo = "FORMAT"
	CellType     CellInfo = "TYPE"
	CellWidth    CellInfo = "WIDTH"
	CellProtect  CellInfo = "PROTECT"
	CellPrefix   CellInfo = "PREFIX"
)

// result returns what CELL yields for the property.
func (c CellInfo) result() category.Set {
	switch c {
	case CellCol, CellRow, CellWidth:
		return numberResult
	case CellColor, CellProtect:
		return logicalResult
	case CellAddress:
		return referenceResult
	default:
		return textResult
	}
}

// Cell reports a property of ref (the formula's own cell when nil).
// The call carries the category of the property's value.
func Cell(info CellInfo, ref ir.Value) (*ir.Call, error) {
	s := cellSig
	s.Result = info.result()
	return s.Call(ir.Provided{Value: ir.Text(info)}, ir.Opt(ref))
}

// CountA counts non-empty values.
func CountA(values ...ir.Value) (*ir.Call, error) { return countASig.Call(ir.Args(values...)...) }

// CountBlank counts empty cells in rng.
func CountBlank(rng ir.Value) (*ir.Call, error) { return countBlankSig.Call(ir.Args(rng)...) }

// IsBlank is TRUE for an empty cell.
func IsBlank(v ir.Value) (*ir.Call, error) { return isBlankSig.Call(ir.Args(v)...) }

// IsError is TRUE for any error value.
func IsError(v ir.Value) (*ir.Call, error) { return isErrorSig.Call(ir.Args(v)...) }

// IsNumber is TRUE for a number.
func IsNumber(v ir.Value) (*ir.Call, error) { return isNumberSig.Call(ir.Args(v)...) }

// Row returns the row number of ref (or of the formula's cell).
func Row(ref ir.Value) (*ir.Call, error) { return rowSig.Call(ir.Opt(ref)) }

// Column returns the column number of ref (or of the formula's cell).
func Column(ref ir.Value) (*ir.Call, error) { return columnSig.Call(ir.Opt(ref)) }

// Rows returns the number of rows in ref.
func Rows(ref ir.Value) (*ir.Call, error) { return rowsSig.Call(ir.Args(ref)...) }

// Columns returns the number of columns in ref.
func Columns(ref ir.Value) (*ir.Call, error) { return columnsSig.Call(ir.Args(ref)...) }

// Areas returns the number of areas in ref.
func Areas(ref ir.Value) (*ir.Call, error) { return areasSig.Call(ir.Args(ref)...) }

// Formula returns the formula of the cell at ref as text.
func Formula(ref ir.Value) (*ir.Call, error) { return formulaSig.Call(ir.Args(ref)...) }

// ErrorType returns the number of the error in v.
func ErrorType(v ir.Value) (*ir.Call, error) { return errorTypeSig.Call(ir.Args(v)...) }
