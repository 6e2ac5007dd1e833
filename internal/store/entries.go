// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// GetEntries returns one page of entries. Entries are ordered by dictID
// then ID, or by ID alone when opts.Sort is "id". Each entry carries its
// terms in stored order and its z-object pruned by opts.Z.
func (s *Store) GetEntries(ctx context.Context, opts types.EntryOptions) (types.EntryPage, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT id, dict_id, descr, z FROM entries WHERE 1=1`)

	if len(opts.Filter.ID) > 0 {
		clause, a := inClause("id", opts.Filter.ID)
		qb.WriteString(" AND " + clause)
		args = append(args, a...)
	}
	if len(opts.Filter.DictID) > 0 {
		clause, a := inClause("dict_id", opts.Filter.DictID)
		qb.WriteString(" AND " + clause)
		args = append(args, a...)
	}

	if opts.Sort == "id" {
		qb.WriteString(` ORDER BY id, dict_id`)
	} else {
		qb.WriteString(` ORDER BY dict_id, id`)
	}

	limit, offset := s.page(opts.Page, opts.PerPage)
	qb.WriteString(` LIMIT ? OFFSET ?`)
	args = append(args, limit, offset)

	entries, err := s.queryEntries(ctx, qb.String(), args...)
	if err != nil {
		return types.EntryPage{}, err
	}

	for i := range entries {
		entries[i].Z = dictionary.ZPrune(entries[i].Z, opts.Z)
	}
	return types.EntryPage{Items: entries}, nil
}

// queryEntries runs an entry query selecting id, dict_id, descr, z and
// attaches the terms of every returned entry.
func (s *Store) queryEntries(ctx context.Context, query string, args ...any) ([]types.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	entries := []types.Entry{}
	for rows.Next() {
		var (
			e     types.Entry
			zJSON sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.DictID, &e.Descr, &zJSON); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if zJSON.Valid && zJSON.String != "" {
			if err := json.Unmarshal([]byte(zJSON.String), &e.Z); err != nil {
				return nil, fmt.Errorf("decoding z of entry %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	if err := s.attachTerms(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) attachTerms(ctx context.Context, entries []types.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]string, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
		index[e.ID] = i
	}

	clause, args := inClause("entry_id", ids)
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, str, style, descr FROM terms WHERE `+clause+` ORDER BY entry_id, pos`,
		args...)
	if err != nil {
		return fmt.Errorf("querying terms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID string
			t       types.Term
		)
		if err := rows.Scan(&entryID, &t.Str, &t.Style, &t.Descr); err != nil {
			return fmt.Errorf("scanning term: %w", err)
		}
		if i, ok := index[entryID]; ok {
			entries[i].Terms = append(entries[i].Terms, t)
		}
	}
	return rows.Err()
}

// AddEntries stores new entries. Terms are cleaned with
// dictionary.PrepTerms first; an entry must keep at least one term and
// belong to a known dictionary. Nothing is stored if any entry fails.
func (s *Store) AddEntries(ctx context.Context, entries []types.Entry) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			e, err := validEntry(e)
			if err != nil {
				return err
			}
			zJSON, err := encodeZ(e.Z)
			if err != nil {
				return fmt.Errorf("encoding z of entry %s: %w", e.ID, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO entries (id, dict_id, descr, z) VALUES (?, ?, ?, ?)`,
				e.ID, e.DictID, e.Descr, zJSON,
			); err != nil {
				return fmt.Errorf("adding entry %s: %w", e.ID, err)
			}
			if err := insertTerms(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateEntries replaces the dictID, descr, terms and z-object of existing
// entries.
func (s *Store) UpdateEntries(ctx context.Context, entries []types.Entry) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			e, err := validEntry(e)
			if err != nil {
				return err
			}
			zJSON, err := encodeZ(e.Z)
			if err != nil {
				return fmt.Errorf("encoding z of entry %s: %w", e.ID, err)
			}
			res, err := tx.ExecContext(ctx,
				`UPDATE entries SET dict_id = ?, descr = ?, z = ? WHERE id = ?`,
				e.DictID, e.Descr, zJSON, e.ID,
			)
			if err != nil {
				return fmt.Errorf("updating entry %s: %w", e.ID, err)
			}
			if err := requireAffected(res, "entry", e.ID); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM terms WHERE entry_id = ?`, e.ID); err != nil {
				return fmt.Errorf("clearing terms of entry %s: %w", e.ID, err)
			}
			if err := insertTerms(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteEntries removes entries and their terms.
func (s *Store) DeleteEntries(ctx context.Context, ids []string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, id := range ids {
			res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
			if err != nil {
				return fmt.Errorf("deleting entry %s: %w", id, err)
			}
			if err := requireAffected(res, "entry", id); err != nil {
				return err
			}
		}
		return nil
	})
}

func validEntry(e types.Entry) (types.Entry, error) {
	if e.ID == "" {
		return e, fmt.Errorf("entry without id: %w", ErrInvalid)
	}
	if e.DictID == "" {
		return e, fmt.Errorf("entry %s without dictID: %w", e.ID, ErrInvalid)
	}
	e = dictionary.PrepEntry(e)
	if len(e.Terms) == 0 {
		return e, fmt.Errorf("entry %s without terms: %w", e.ID, ErrInvalid)
	}
	return e, nil
}

func insertTerms(ctx context.Context, tx *sql.Tx, e types.Entry) error {
	for pos, t := range e.Terms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO terms (entry_id, pos, str, style, descr) VALUES (?, ?, ?, ?, ?)`,
			e.ID, pos, t.Str, t.Style, t.Descr,
		); err != nil {
			return fmt.Errorf("adding term %q of entry %s: %w", t.Str, e.ID, err)
		}
	}
	return nil
}

func encodeZ(z map[string]any) (sql.NullString, error) {
	if len(z) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(z)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
