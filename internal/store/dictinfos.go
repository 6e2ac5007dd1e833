// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// GetDictInfos returns one page of dictionary infos ordered by ID.
func (s *Store) GetDictInfos(ctx context.Context, opts types.DictInfoOptions) (types.DictInfoPage, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT id, abbrev, name FROM dict_infos WHERE 1=1`)
	if len(opts.Filter.ID) > 0 {
		clause, a := inClause("id", opts.Filter.ID)
		qb.WriteString(" AND " + clause)
		args = append(args, a...)
	}
	qb.WriteString(` ORDER BY id LIMIT ? OFFSET ?`)
	limit, offset := s.page(opts.Page, opts.PerPage)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return types.DictInfoPage{}, fmt.Errorf("querying dict infos: %w", err)
	}
	defer rows.Close()

	infos := []types.DictInfo{}
	for rows.Next() {
		var di types.DictInfo
		if err := rows.Scan(&di.ID, &di.Abbrev, &di.Name); err != nil {
			return types.DictInfoPage{}, fmt.Errorf("scanning dict info: %w", err)
		}
		infos = append(infos, di)
	}
	return types.DictInfoPage{Items: infos}, rows.Err()
}

// AddDictInfos stores new dictionary infos.
func (s *Store) AddDictInfos(ctx context.Context, infos []types.DictInfo) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, di := range infos {
			if di.ID == "" {
				return fmt.Errorf("dict info without id: %w", ErrInvalid)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO dict_infos (id, abbrev, name) VALUES (?, ?, ?)`,
				di.ID, di.Abbrev, di.Name,
			); err != nil {
				return fmt.Errorf("adding dict info %s: %w", di.ID, err)
			}
		}
		return nil
	})
}

// UpdateDictInfos replaces the abbrev and name of existing dictionary infos.
func (s *Store) UpdateDictInfos(ctx context.Context, infos []types.DictInfo) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, di := range infos {
			res, err := tx.ExecContext(ctx,
				`UPDATE dict_infos SET abbrev = ?, name = ? WHERE id = ?`,
				di.Abbrev, di.Name, di.ID,
			)
			if err != nil {
				return fmt.Errorf("updating dict info %s: %w", di.ID, err)
			}
			if err := requireAffected(res, "dict info", di.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteDictInfos removes dictionary infos. A dictionary that still has
// entries cannot be deleted.
func (s *Store) DeleteDictInfos(ctx context.Context, dictIDs []string) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, id := range dictIDs {
			res, err := tx.ExecContext(ctx, `DELETE FROM dict_infos WHERE id = ?`, id)
			if err != nil {
				return fmt.Errorf("deleting dict info %s: %w", id, err)
			}
			if err := requireAffected(res, "dict info", id); err != nil {
				return err
			}
		}
		return nil
	})
}
