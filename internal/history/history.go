// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of submission runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docparse/pkg/types"
)

const defaultLimit = 20

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path, creating parent directories and
// the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			document_path TEXT NOT NULL,
			output_path TEXT,
			status TEXT NOT NULL,
			error TEXT,
			result_bytes INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts rec. Recording the same ID twice replaces the earlier row.
// started_at is stored as Unix nanoseconds so ordering is numeric.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs
			(id, document_path, output_path, status, error, result_bytes, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.DocumentPath, rec.OutputPath, string(rec.Status), rec.Error,
		rec.ResultBytes, rec.StartedAt.UnixNano(), rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A non-positive limit uses 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_path, output_path, status, error, result_bytes, started_at, duration_ms
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []types.RunRecord
	for rows.Next() {
		var (
			rec        types.RunRecord
			outputPath sql.NullString
			errText    sql.NullString
			status     string
			startedAt  int64
			durationMS int64
		)
		if err := rows.Scan(&rec.ID, &rec.DocumentPath, &outputPath, &status, &errText,
			&rec.ResultBytes, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.OutputPath = outputPath.String
		rec.Error = errText.String
		rec.Status = types.RunStatus(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.StartedAt = time.Unix(0, startedAt).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
