// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// GetRefTerms returns one page of referring terms in sorted order. The
// filter matches whole strings exactly.
func (s *Store) GetRefTerms(ctx context.Context, opts types.RefTermOptions) (types.RefTermPage, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT str FROM ref_terms WHERE 1=1`)
	if len(opts.Filter.Str) > 0 {
		clause, a := inClause("str", opts.Filter.Str)
		qb.WriteString(" AND " + clause)
		args = append(args, a...)
	}
	qb.WriteString(` ORDER BY str LIMIT ? OFFSET ?`)
	limit, offset := s.page(opts.Page, opts.PerPage)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return types.RefTermPage{}, fmt.Errorf("querying ref terms: %w", err)
	}
	defer rows.Close()

	items := []string{}
	for rows.Next() {
		var str string
		if err := rows.Scan(&str); err != nil {
			return types.RefTermPage{}, fmt.Errorf("scanning ref term: %w", err)
		}
		items = append(items, str)
	}
	return types.RefTermPage{Items: items}, rows.Err()
}

// AddRefTerms stores referring terms. Terms already present are ignored.
func (s *Store) AddRefTerms(ctx context.Context, refTerms []string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, str := range refTerms {
			if str == "" {
				return fmt.Errorf("empty ref term: %w", ErrInvalid)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO ref_terms (str) VALUES (?)`, str,
			); err != nil {
				return fmt.Errorf("adding ref term %q: %w", str, err)
			}
		}
		return nil
	})
}

// DeleteRefTerms removes referring terms.
func (s *Store) DeleteRefTerms(ctx context.Context, refTerms []string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, str := range refTerms {
			res, err := tx.ExecContext(ctx, `DELETE FROM ref_terms WHERE str = ?`, str)
			if err != nil {
				return fmt.Errorf("deleting ref term %q: %w", str, err)
			}
			if err := requireAffected(res, "ref term", str); err != nil {
				return err
			}
		}
		return nil
	})
}
