package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id TEXT PRIMARY KEY,
	command_path TEXT NOT NULL,
	args TEXT NOT NULL,
	outcome TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	started_at TEXT NOT NULL
)`

// Invocation is one recorded command execution.
type Invocation struct {
	ID        string
	Path      string
	Args      string
	Outcome   string
	Duration  time.Duration
	StartedAt time.Time
}

// Store wraps a SQLite database holding the invocation history.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the history database at path. Use ":memory:" for
// tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// An in-memory database exists per connection; without this the pool
	// would hand out fresh empty databases.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Insert records one invocation.
func (s *Store) Insert(inv Invocation) error {
	_, err := s.db.Exec(
		`INSERT INTO invocations (id, command_path, args, outcome, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Path,
		inv.Args,
		inv.Outcome,
		inv.Duration.Milliseconds(),
		inv.StartedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert invocation: %w", err)
	}
	return nil
}

// Recent returns the most recent invocations, newest first.
func (s *Store) Recent(limit int) ([]Invocation, error) {
	rows, err := s.db.Query(
		`SELECT id, command_path, args, outcome, duration_ms, started_at
		 FROM invocations ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query invocations: %w", err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var (
			inv        Invocation
			durationMS int64
			startedAt  string
		)
		if err := rows.Scan(&inv.ID, &inv.Path, &inv.Args, &inv.Outcome, &durationMS, &startedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		inv.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339, startedAt); err == nil {
			inv.StartedAt = ts
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
