package store

import (
	"context"
	"fmt"

	"github.com/roach88/odsf/internal/ir"
)

// Render is one recorded formula.
type Render struct {
	Seq       int64 // assigned by the store
	RunID     string
	Document  string
	Name      string
	FormulaID string
	Formula   string
}

// WriteRender inserts a single render and reports whether a new row was
// written. Uses ON CONFLICT(run_id, name) DO NOTHING for idempotency:
// writing the same formula name twice in one run keeps the first row.
//
// An empty FormulaID is computed from Formula; a non-empty one must match.
func (s *Store) WriteRender(ctx context.Context, r Render) (inserted bool, err error) {
	id, err := formulaID(r)
	if err != nil {
		return false, fmt.Errorf("write render: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO renders
		(run_id, document, name, formula_id, formula)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, name) DO NOTHING
	`,
		r.RunID,
		r.Document,
		r.Name,
		id,
		r.Formula,
	)
	if err != nil {
		return false, fmt.Errorf("write render: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write render: rows affected: %w", err)
	}
	return n > 0, nil
}

// WriteRun records a whole render run in one transaction. Every render
// gets runID and document; their own RunID and Document fields are
// ignored. Returns the number of rows actually inserted.
func (s *Store) WriteRun(ctx context.Context, runID, document string, renders []Render) (int, error) {
	if runID == "" {
		return 0, fmt.Errorf("write run: run id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO renders
		(run_id, document, name, formula_id, formula)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, name) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("write run: prepare: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, r := range renders {
		id, err := formulaID(r)
		if err != nil {
			return 0, fmt.Errorf("write run: %w", err)
		}
		result, err := stmt.ExecContext(ctx, runID, document, r.Name, id, r.Formula)
		if err != nil {
			return 0, fmt.Errorf("write run: insert %q: %w", r.Name, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("write run: rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write run: commit: %w", err)
	}
	return inserted, nil
}

func formulaID(r Render) (string, error) {
	id := ir.FormulaID(r.Formula)
	if r.FormulaID != "" && r.FormulaID != id {
		return "", fmt.Errorf("formula id %s does not match formula %q", r.FormulaID, r.Name)
	}
	return id, nil
}
