// Package history keeps a local SQLite log of finished conversions so that
// earlier results can be listed again from the command line.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/kirlot/internal"
	"codeberg.org/snonux/kirlot/internal/translit"
)

const schema = `CREATE TABLE IF NOT EXISTS conversions (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT    NOT NULL,
	direction  TEXT    NOT NULL,
	source     TEXT    NOT NULL,
	result     TEXT    NOT NULL,
	created_at INTEGER NOT NULL
)`

// Entry is one recorded conversion.
type Entry struct {
	ID        string
	Direction translit.Direction
	Source    string
	Result    string
	CreatedAt time.Time
}

// Store is a conversion log backed by a SQLite file.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens (and if needed creates) the history database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// SQLite serializes writers; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record appends a conversion to the log.
func (s *Store) Record(ctx context.Context, dir translit.Direction, source, result string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, direction, source, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		internal.GenerateEntryID(source), string(dir), source, result, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, direction, source, result, created_at FROM conversions ORDER BY seq DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			dir     string
			created int64
		)
		if err := rows.Scan(&e.ID, &dir, &e.Source, &e.Result, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Direction = translit.Direction(dir)
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded conversions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
