// Package history persists parse results in a local SQLite database so
// previously parsed commands can be listed and replayed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/abdul-hamid-achik/curlparse/packages/core/parser"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS parses (
	id          TEXT PRIMARY KEY,
	command     TEXT NOT NULL,
	url         TEXT NOT NULL,
	entry_count INTEGER NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_parses_created_at ON parses (created_at);
`

// Record is one stored parse result.
type Record struct {
	ID         string
	Command    string
	URL        string
	EntryCount int
	CreatedAt  time.Time
}

// Store is a SQLite-backed parse history.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// Open opens (and if necessary creates) the history database at path,
// creating parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db, timeout: 5 * time.Second}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores one parse result and returns its generated id. The URL
// column holds the reassembled target URL of the command's URL entry.
func (s *Store) Record(command string, entries []parser.Entry) (string, error) {
	target := ""
	for _, e := range entries {
		if e.Kind == parser.KindURL && e.URL != nil {
			target = e.URL.String()
			break
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO parses (id, command, url, entry_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, command, target, len(entries), time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to record parse: %w", err)
	}
	return id, nil
}

// List returns up to limit records, most recent first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	query := `SELECT id, command, url, entry_count, created_at FROM parses ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Command, &r.URL, &r.EntryCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history row iteration error: %w", err)
	}
	return records, nil
}

// Clear removes all stored records.
func (s *Store) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM parses`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
