package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainFormula is the hashing domain for formula identity.
// Version suffix enables future algorithm migration.
const DomainFormula = "odsf/formula/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte (0x00) separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// FormulaID computes the content-addressed ID of emitted formula text.
// Identical text always yields the same ID, across runs and documents.
func FormulaID(formula string) string {
	return hashWithDomain(DomainFormula, []byte(formula))
}
