package store

import (
	"context"
	"database/sql"
	"fmt"
)

const renderColumns = `seq, run_id, document, name, formula_id, formula`

// ReadRun returns every render of a run, ordered by seq.
// Returns an empty slice (not nil) if the run does not exist.
func (s *Store) ReadRun(ctx context.Context, runID string) ([]Render, error) {
	return s.queryRenders(ctx, "read run", `
		SELECT `+renderColumns+`
		FROM renders
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
}

// LatestRun returns the renders of the most recent run of document.
// Returns an empty slice if the document was never rendered.
func (s *Store) LatestRun(ctx context.Context, document string) ([]Render, error) {
	return s.queryRenders(ctx, "latest run", `
		SELECT `+renderColumns+`
		FROM renders
		WHERE run_id = (
			SELECT run_id FROM renders
			WHERE document = ?
			ORDER BY seq DESC
			LIMIT 1
		)
		ORDER BY seq ASC
	`, document)
}

// HistoryFilter narrows History. Empty fields match everything.
type HistoryFilter struct {
	Document string
	Name     string
}

// History returns recorded renders matching f in recording order.
func (s *Store) History(ctx context.Context, f HistoryFilter) ([]Render, error) {
	return s.queryRenders(ctx, "history", `
		SELECT `+renderColumns+`
		FROM renders
		WHERE (? = '' OR document = ?)
		  AND (? = '' OR name = ?)
		ORDER BY seq ASC
	`, f.Document, f.Document, f.Name, f.Name)
}

// RunSummary describes one render run.
type RunSummary struct {
	RunID    string
	Document string
	Formulas int
	FirstSeq int64
}

// Runs lists render runs in the order they were recorded.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, document, COUNT(*), MIN(seq)
		FROM renders
		GROUP BY run_id, document
		ORDER BY MIN(seq) ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Document, &r.Formulas, &r.FirstSeq); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// FindByFormulaID returns every render whose formula hashes to id.
func (s *Store) FindByFormulaID(ctx context.Context, id string) ([]Render, error) {
	return s.queryRenders(ctx, "find formula", `
		SELECT `+renderColumns+`
		FROM renders
		WHERE formula_id = ?
		ORDER BY seq ASC
	`, id)
}

func (s *Store) queryRenders(ctx context.Context, what, query string, args ...any) ([]Render, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	renders := []Render{}
	for rows.Next() {
		r, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return renders, nil
}

func scanRender(rows *sql.Rows) (Render, error) {
	var r Render
	if err := rows.Scan(&r.Seq, &r.RunID, &r.Document, &r.Name, &r.FormulaID, &r.Formula); err != nil {
		return Render{}, fmt.Errorf("scan render: %w", err)
	}
	return r, nil
}
