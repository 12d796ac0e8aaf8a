package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/odsf/internal/ir"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRender builds a render with its formula id filled in.
func createTestRender(runID, document, name, formula string) Render {
	return Render{
		RunID:     runID,
		Document:  document,
		Name:      name,
		FormulaID: ir.FormulaID(formula),
		Formula:   formula,
	}
}
