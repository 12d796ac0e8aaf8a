package fn

import (
	"github.com/roach88/odsf/internal/category"
	"github.com/roach88/odsf/internal/ir"
)

// dbSig declares the (database; field; criteria) shape shared by the D*
// functions.
func dbSig(name string) ir.Signature {
	return sig(name, numberResult,
		req("database", category.Reference),
		req("field", category.Field),
		req("criteria", category.Reference),
	)
}

// dbShortSig is the form without a field; DCOUNT and DCOUNTA then count
// whole records.
func dbShortSig(name string) ir.Signature {
	return sig(name, numberResult,
		req("database", category.Reference),
		req("criteria", category.Reference),
	)
}

var (
	dAverageSig     = dbSig("DAVERAGE")
	dCountSig       = dbSig("DCOUNT")
	dCountShortSig  = dbShortSig("DCOUNT")
	dCountASig      = dbSig("DCOUNTA")
	dCountAShortSig = dbShortSig("DCOUNTA")
	dGetSig         = dbSig("DGET")
	dMaxSig         = dbSig("DMAX")
	dMinSig         = dbSig("DMIN")
	dProductSig     = dbSig("DPRODUCT")
	dStDevSig       = dbSig("DSTDEV")
	dStDevPSig      = dbSig("DSTDEVP")
	dSumSig         = dbSig("DSUM")
	dVarSig         = dbSig("DVAR")
	dVarPSig        = dbSig("DVARP")
)

var databaseSignatures = []ir.Signature{
	dAverageSig,
	dCountSig, dCountShortSig,
	dCountASig, dCountAShortSig,
	dGetSig, dMaxSig, dMinSig, dProductSig,
	dStDevSig, dStDevPSig, dSumSig, dVarSig, dVarPSig,
}

func dbCall(s ir.Signature, database, field, criteria ir.Value) (*ir.Call, error) {
	return s.Call(ir.Args(database, field, criteria)...)
}

// DAverage averages field over the records matching criteria.
func DAverage(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dAverageSig, database, field, criteria)
}

// DCount counts numeric values of field over the matching records. A nil
// field drops the argument entirely and counts records.
func DCount(database, field, criteria ir.Value) (*ir.Call, error) {
	if field == nil {
		return dCountShortSig.Call(ir.Args(database, criteria)...)
	}
	return dbCall(dCountSig, database, field, criteria)
}

// DCountA is DCount counting non-empty values.
func DCountA(database, field, criteria ir.Value) (*ir.Call, error) {
	if field == nil {
		return dCountAShortSig.Call(ir.Args(database, criteria)...)
	}
	return dbCall(dCountASig, database, field, criteria)
}

// DGet returns the single matching value of field.
func DGet(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dGetSig, database, field, criteria)
}

// DMax returns the largest matching value of field.
func DMax(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dMaxSig, database, field, criteria)
}

// DMin returns the smallest matching value of field.
func DMin(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dMinSig, database, field, criteria)
}

// DProduct multiplies the matching values of field.
func DProduct(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dProductSig, database, field, criteria)
}

// DStDev is the sample standard deviation of the matching values.
func DStDev(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dStDevSig, database, field, criteria)
}

// DStDevP is the population standard deviation of the matching values.
func DStDevP(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dStDevPSig, database, field, criteria)
}

// DSum sums the matching values of field.
func DSum(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dSumSig, database, field, criteria)
}

// DVar is the sample variance of the matching values.
func DVar(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dVarSig, database, field, criteria)
}

// DVarP is the population variance of the matching values.
func DVarP(database, field, criteria ir.Value) (*ir.Call, error) {
	return dbCall(dVarPSig, database, field, criteria)
}
