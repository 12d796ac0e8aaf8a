// Package store provides SQLite-backed storage for rendered formulas.
//
// Every render of a document is a run, identified by a run ID. A run
// records one row per formula with the formula text and its content
// address (ir.FormulaID). The log is append-only:
//   - UNIQUE(run_id, name) makes rewriting a run a no-op
//   - all ordering uses the seq column, never timestamps
//   - all queries end in ORDER BY seq ASC so results are deterministic
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
