package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store is the render log: one row per formula per render run.
type Store struct {
	db *sql.DB
}

// renderPragmas configure every connection. The log is written by one
// render at a time and read by diff and history, possibly concurrently
// from another process.
var renderPragmas = []struct{ name, value string }{
	{"journal_mode", "WAL"},   // history/diff can read while a render writes
	{"synchronous", "NORMAL"}, // a lost last run is re-rendered, not corrupted
	{"busy_timeout", "5000"},  // ms to wait on a render holding the write lock
}

// migrations[i] upgrades a log at user_version i to i+1.
var migrations = []func(*sql.DB) error{
	addFormulaIDIndex,
}

// currentSchemaVersion is the user_version of a fully migrated log.
var currentSchemaVersion = len(migrations)

// Open opens the render log at path, creating the file and the renders
// table when missing and migrating older logs forward. Opening an
// up-to-date log again changes nothing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open render log: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to render log %s: %w", path, err)
	}

	// One connection: renders are written in a single transaction and
	// SQLite admits one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := configure(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the log. A zero Store closes without error.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func configure(db *sql.DB) error {
	for _, p := range renderPragmas {
		stmt := fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("configure render log: %q: %w", stmt, err)
		}
	}
	return nil
}

// migrate creates the renders table if needed, then runs every migration
// above the log's user_version.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create renders table: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read log version: %w", err)
	}
	for v := version; v < len(migrations); v++ {
		if err := migrations[v](db); err != nil {
			return fmt.Errorf("migrate render log to v%d: %w", v+1, err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("write log version: %w", err)
	}
	return nil
}

// addFormulaIDIndex backs FindByFormulaID on logs created before the
// index was part of schema.sql.
func addFormulaIDIndex(db *sql.DB) error {
	_, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_renders_formula_id ON renders(formula_id)`)
	return err
}

// verifyPragma reports whether pragma name reads back as want.
func (s *Store) verifyPragma(name, want string) error {
	var got string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&got); err != nil {
		return fmt.Errorf("read pragma %s: %w", name, err)
	}
	if got != want {
		return fmt.Errorf("pragma %s = %q, want %q", name, got, want)
	}
	return nil
}
