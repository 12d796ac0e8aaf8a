package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

var (
	vLookupSig = sig("VLOOKUP", anyResult,
		req("lookup", 0),
		req("source", category.Matrix),
		req("column", category.Number),
		opt("sorted", category.Logical),
	)
	hLookupSig = sig("HLOOKUP", anyResult,
		req("lookup", 0),
		req("source", category.Matrix),
		req("row", category.Number),
		opt("sorted", category.Logical),
	)
	matchSig = sig("MATCH", numberResult,
		req("search", category.Scalar),
		req("region", category.Matrix),
		opt("type", category.Number),
	)
	indexSig = sig("INDEX", anyResult,
		req("source", category.Matrix),
		opt("row", category.Number),
		opt("column", category.Number),
		opt("area", category.Number),
	)
	chooseSig = sig("CHOOSE", anyResult,
		req("index", category.Number),
		rest("values", 0),
	)
	indirectSig = sig("INDIRECT", referenceResult,
		req("ref", category.Text),
		opt("a1", category.Logical),
	)
	lookupSig = sig("LOOKUP", anyResult,
		req("find", 0),
		req("searched", category.Matrix),
		opt("results", category.Matrix),
	)
	addressSig = sig("ADDRESS", textResult,
		req("row", category.Number),
		req("column", category.Number),
		opt("abs", category.Number),
		opt("a1", category.Logical),
		opt("sheet", category.Text),
	)
	offsetSig = sig("OFFSET", referenceResult,
		req("ref", category.Reference),
		req("rows", category.Number),
		req("columns", category.Number),
		opt("height", category.Number),
		opt("width", category.Number),
	)
)

var lookupSignatures = []ir.Signature{
	vLookupSig, hLookupSig, matchSig, indexSig, chooseSig, indirectSig, lookupSig, addressSig, offsetSig,
}

// VLookup searches the first column of source for lookup and returns the
// value in column. A nil sorted leaves the argument out.
func VLookup(lookup, source, column, sorted ir.Value) (*ir.Call, error) {
	return vLookupSig.Call(ir.Provided{Value: lookup}, ir.Provided{Value: source}, ir.Provided{Value: column}, ir.Opt(sorted))
}

// HLookup is VLookup along the first row.
func HLookup(lookup, source, row, sorted ir.Value) (*ir.Call, error) {
	return hLookupSig.Call(ir.Provided{Value: lookup}, ir.Provided{Value: source}, ir.Provided{Value: row}, ir.Opt(sorted))
}

// Match returns the 1-based position of search in region.
func Match(search, region, typ ir.Value) (*ir.Call, error) {
	return matchSig.Call(ir.Provided{Value: search}, ir.Provided{Value: region}, ir.Opt(typ))
}

// Index returns the cell of source at row and column. Nil coordinates are
// left empty: INDEX(src;;2) selects a whole column.
func Index(source, row, column, area ir.Value) (*ir.Call, error) {
	return indexSig.Call(ir.Provided{Value: source}, ir.Opt(row), ir.Opt(column), ir.Opt(area))
}

// Choose returns the index-th (1-based) value.
func Choose(index ir.Value, values ...ir.Value) (*ir.Call, error) {
	return chooseSig.Call(ir.Args(append([]ir.Value{index}, values...)...)...)
}

// Indirect turns reference text into a reference. A nil a1 leaves the
// argument out (A1 notation).
func Indirect(ref, a1 ir.Value) (*ir.Call, error) {
	return indirectSig.Call(ir.Provided{Value: ref}, ir.Opt(a1))
}

// LookupVector searches a sorted vector and returns the matching entry of
// results (or of searched when results is nil).
func LookupVector(find, searched, results ir.Value) (*ir.Call, error) {
	return lookupSig.Call(ir.Provided{Value: find}, ir.Provided{Value: searched}, ir.Opt(results))
}

// Address returns a cell address as text. Nil optional arguments are left
// out, or empty when a later one is given.
func Address(row, column, abs, a1, sheet ir.Value) (*ir.Call, error) {
	return addressSig.Call(ir.Provided{Value: row}, ir.Provided{Value: column}, ir.Opt(abs), ir.Opt(a1), ir.Opt(sheet))
}

// Offset shifts and optionally resizes ref.
func Offset(ref, rows, columns, height, width ir.Value) (*ir.Call, error) {
	return offsetSig.Call(ir.Provided{Value: ref}, ir.Provided{Value: rows}, ir.Provided{Value: columns}, ir.Opt(height), ir.Opt(width))
}
