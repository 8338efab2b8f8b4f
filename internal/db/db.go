package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/comphy-lab/sitesearch/internal/indexer"
)

// DB wraps a sql.DB holding the run archive: one row per indexing run
// plus the entries it produced, so consecutive runs can be compared.
type DB struct {
	*sql.DB
	path string
}

// Run is one archived indexing run.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	RepoCount  int
	FileCount  int
	EntryCount int
	Output     string
}

// Open creates or opens the archive database at the given path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at DATETIME NOT NULL,
    finished_at DATETIME NOT NULL,
    repo_count INTEGER NOT NULL DEFAULT 0,
    file_count INTEGER NOT NULL DEFAULT 0,
    entry_count INTEGER NOT NULL DEFAULT 0,
    output TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

CREATE TABLE IF NOT EXISTS entries (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    url TEXT NOT NULL,
    type TEXT NOT NULL,
    priority INTEGER NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    PRIMARY KEY(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_entries_type ON entries(run_id, type);
`

// RecordRun archives a completed run and its entries in one
// transaction, returning the run id.
func (d *DB) RecordRun(run Run, entries []indexer.Entry) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := d.Begin()
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, started_at, finished_at, repo_count, file_count, entry_count, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC(), run.FinishedAt.UTC(),
		run.RepoCount, run.FileCount, run.EntryCount, run.Output,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO entries (run_id, position, title, content, url, type, priority, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing entry insert: %w", err)
	}
	defer stmt.Close()

	for i, entry := range entries {
		tags := "[]"
		if len(entry.Tags) > 0 {
			encoded, err := json.Marshal(entry.Tags)
			if err != nil {
				return "", fmt.Errorf("encoding tags: %w", err)
			}
			tags = string(encoded)
		}
		if _, err := stmt.Exec(run.ID, i, entry.Title, entry.Content, entry.URL, entry.Type, entry.Priority, tags); err != nil {
			return "", fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns archived runs, most recent first.
func (d *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.Query(
		`SELECT id, started_at, finished_at, repo_count, file_count, entry_count, output
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.RepoCount, &r.FileCount, &r.EntryCount, &r.Output); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunEntries returns the archived entries of a run in index order.
func (d *DB) RunEntries(runID string) ([]indexer.Entry, error) {
	rows, err := d.Query(
		`SELECT title, content, url, type, priority, tags
		 FROM entries WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []indexer.Entry
	for rows.Next() {
		var entry indexer.Entry
		var tags string
		if err := rows.Scan(&entry.Title, &entry.Content, &entry.URL, &entry.Type, &entry.Priority, &tags); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if tags != "" && tags != "[]" {
			if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
				return nil, fmt.Errorf("decoding tags: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
