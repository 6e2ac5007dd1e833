// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// termHit is the best matching term found for one entry.
type termHit struct {
	pos       int
	matchType types.MatchType
}

// GetEntryMatchesForString returns one page of entries that have a term
// containing str, case-insensitively. Every entry appears once, matched
// on its best term: a term starting with str (type S) beats one that only
// contains it (type T), and among equals the earliest term wins. Results
// are ordered by type, str, dictID and ID. An empty str matches nothing.
func (s *Store) GetEntryMatchesForString(ctx context.Context, str string, opts types.MatchOptions) (types.MatchPage, error) {
	if str == "" {
		return types.MatchPage{Items: []types.Match{}}, nil
	}

	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT t.entry_id, t.pos, instr(lower(t.str), lower(?)) AS at
		FROM terms t
		JOIN entries e ON e.id = t.entry_id
		WHERE instr(lower(t.str), lower(?)) > 0`)
	args = append(args, str, str)

	if len(opts.Filter.DictID) > 0 {
		clause, a := inClause("e.dict_id", opts.Filter.DictID)
		qb.WriteString(" AND " + clause)
		args = append(args, a...)
	}
	qb.WriteString(` ORDER BY t.entry_id, t.pos`)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return types.MatchPage{}, fmt.Errorf("querying term matches: %w", err)
	}

	hits := make(map[string]termHit)
	var ids []string
	for rows.Next() {
		var (
			entryID string
			pos, at int
		)
		if err := rows.Scan(&entryID, &pos, &at); err != nil {
			rows.Close()
			return types.MatchPage{}, fmt.Errorf("scanning term match: %w", err)
		}

		mt := types.MatchInfix
		if at == 1 {
			mt = types.MatchPrefix
		}
		prev, seen := hits[entryID]
		if !seen {
			ids = append(ids, entryID)
		}
		if !seen || (mt == types.MatchPrefix && prev.matchType != types.MatchPrefix) {
			hits[entryID] = termHit{pos: pos, matchType: mt}
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return types.MatchPage{}, fmt.Errorf("reading term matches: %w", err)
	}
	rows.Close()

	if len(ids) == 0 {
		return types.MatchPage{Items: []types.Match{}}, nil
	}

	clause, idArgs := inClause("id", ids)
	entries, err := s.queryEntries(ctx,
		`SELECT id, dict_id, descr, z FROM entries WHERE `+clause, idArgs...)
	if err != nil {
		return types.MatchPage{}, err
	}

	matches := make([]types.Match, 0, len(entries))
	for _, e := range entries {
		hit, ok := hits[e.ID]
		if !ok || hit.pos >= len(e.Terms) {
			continue
		}
		matches = append(matches, dictionary.EntryToMatch(e, hit.pos, hit.matchType))
	}

	slices.SortFunc(matches, func(a, b types.Match) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.Str, b.Str),
			cmp.Compare(a.DictID, b.DictID),
			cmp.Compare(a.ID, b.ID),
		)
	})

	limit, offset := s.page(opts.Page, opts.PerPage)
	if offset >= len(matches) {
		return types.MatchPage{Items: []types.Match{}}, nil
	}
	matches = matches[offset:min(offset+limit, len(matches))]

	return types.MatchPage{Items: dictionary.ZPropPrune(matches, opts.Z)}, nil
}
