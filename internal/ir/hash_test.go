package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaID(t *testing.T) {
	id1 := FormulaID("of=SUM([.A1:.A3])")
	id2 := FormulaID("of=SUM([.A1:.A3])")
	id3 := FormulaID("of=SUM([.A1:.A4])")

	assert.Equal(t, id1, id2, "FormulaID must be deterministic")
	assert.NotEqual(t, id1, id3)
	assert.Len(t, id1, 64, "SHA-256 hex is 64 characters")
}

func TestHashWithDomain_Separation(t *testing.T) {
	// Moving bytes across the domain/data boundary must change the hash.
	a := hashWithDomain("odsf/formula/v1", []byte("x"))
	b := hashWithDomain("odsf/formula/v1x", []byte(""))
	assert.NotEqual(t, a, b)

	assert.Equal(t, hashWithDomain(DomainFormula, []byte("of=1")), FormulaID("of=1"))
}
