// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store is a SQLite-backed dictionary: it keeps dictionary infos,
// entries with their terms, and referring terms, and answers the entry,
// free-text and referring-term queries of the matching core.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

const defaultPerPage = 20

var (
	// ErrNotFound is returned when an update or delete names an unknown ID.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is returned for records that cannot be stored.
	ErrInvalid = errors.New("invalid record")
)

var (
	_ dictionary.Backend = (*Store)(nil)
	_ dictionary.Manager = (*Store)(nil)
)

// Store manages the dictionary SQLite database.
type Store struct {
	db      *sql.DB
	perPage int
}

// Open opens or creates the database at cfg.Path and creates the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("opening database: no path configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	s := &Store{db: db, perPage: perPage}
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
		`CREATE TABLE IF NOT EXISTS dict_infos (
			id TEXT PRIMARY KEY,
			abbrev TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			dict_id TEXT NOT NULL REFERENCES dict_infos(id),
			descr TEXT NOT NULL DEFAULT '',
			z TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_dict_id ON entries(dict_id)`,
		`CREATE TABLE IF NOT EXISTS terms (
			entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
			pos INTEGER NOT NULL,
			str TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			descr TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (entry_id, pos)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_str ON terms(str)`,
		`CREATE TABLE IF NOT EXISTS ref_terms (
			str TEXT PRIMARY KEY
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// page turns 1-based page options into LIMIT and OFFSET values.
func (s *Store) page(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.perPage
	}
	return perPage, (page - 1) * perPage
}

// inClause returns "col IN (?, ?, ...)" and the matching args.
func inClause(col string, values []string) (string, []any) {
	marks := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		marks[i] = "?"
		args[i] = v
	}
	return col + " IN (" + strings.Join(marks, ", ") + ")", args
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func requireAffected(res sql.Result, what, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s %s: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
	}
	return nil
}
