// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record persists issued verification codes for later
// authenticity checks.
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/similarity-engine/pkg/types"
)

const dbFile = "records.db"

// Store manages the issued-code SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the record database at dir/records.db, creating
// the schema if it does not exist.
func Open(cfg types.RecordStoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "records"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating record directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening record database: %w", err)
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS issued_codes (
		code TEXT PRIMARY KEY,
		name TEXT,
		email TEXT,
		issued_at TEXT NOT NULL
	)`)
	return err
}

// Put records that code was issued to requester at issuedAt. Re-issuing
// the same code (the same text submitted again) refreshes the record.
func (s *Store) Put(ctx context.Context, code string, requester types.Requester, issuedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO issued_codes (code, name, email, issued_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET
			name=excluded.name, email=excluded.email, issued_at=excluded.issued_at`,
		code, requester.Name, requester.Email, issuedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording code %s: %w", code, err)
	}
	return nil
}

// Get reports whether code was ever issued.
func (s *Store) Get(ctx context.Context, code string) (bool, error) {
	var found string
	err := s.db.QueryRowContext(ctx,
		`SELECT code FROM issued_codes WHERE code = ?`, code,
	).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up code %s: %w", code, err)
	}
	return true, nil
}
