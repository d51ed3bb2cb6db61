// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists merge runs in a local SQLite database so past
// results can be reviewed without keeping the rewritten articles around.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/pkg/types"
)

// Store manages the merge-run history SQLite database.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens or creates the history database at cfg.DBPath, creating the
// schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = 20
	}

	s := &Store{db: db, limit: limit}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		merge_count INTEGER NOT NULL,
		duplicates TEXT,
		input_bytes INTEGER,
		output_bytes INTEGER,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one merge run. The record's ID and CreatedAt are assigned
// here and written back to rec.
func (s *Store) Record(ctx context.Context, rec *types.RunRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	dupsJSON, _ := json.Marshal(rec.Duplicates)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (source, merge_count, duplicates, input_bytes, output_bytes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.MergeCount, string(dupsJSON),
		rec.InputBytes, rec.OutputBytes, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	rec.ID, _ = res.LastInsertId()
	return nil
}

// Recent returns up to limit runs, newest first. A limit of 0 uses the
// configured default.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = s.limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, merge_count, duplicates, input_bytes, output_bytes, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var dupsJSON, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.MergeCount,
			&dupsJSON, &rec.InputBytes, &rec.OutputBytes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if dupsJSON != "" {
			json.Unmarshal([]byte(dupsJSON), &rec.Duplicates)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = t
		}
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}
