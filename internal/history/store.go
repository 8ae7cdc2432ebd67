// Package history records finished runs in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	file       TEXT NOT NULL,
	started_at TEXT NOT NULL,
	elapsed_ms REAL NOT NULL,
	result     TEXT NOT NULL DEFAULT '',
	error      TEXT NOT NULL DEFAULT ''
)`

// Run is one recorded evaluation. Result is the rendering of the final
// value; Error is empty for successful runs.
type Run struct {
	ID        uuid.UUID
	File      string
	StartedAt time.Time
	Elapsed   time.Duration
	Result    string
	Error     string
}

// Failed reports whether the run ended in an error.
func (r Run) Failed() bool { return r.Error != "" }

// Store is a run history backed by one SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
// ":memory:" gives a private in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	// A memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening history %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts run. A zero ID is replaced by a fresh one.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, file, started_at, elapsed_ms, result, error) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID.String(),
		run.File,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		float64(run.Elapsed)/float64(time.Millisecond),
		run.Result,
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file, started_at, elapsed_ms, result, error FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			id, started string
			elapsedMs   float64
			run         Run
		)
		if err := rows.Scan(&id, &run.File, &started, &elapsedMs, &run.Result, &run.Error); err != nil {
			return nil, fmt.Errorf("reading run: %w", err)
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run %q: %w", id, err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("run %s: %w", id, err)
		}
		run.Elapsed = time.Duration(elapsedMs * float64(time.Millisecond))
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
