// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// LoadFixedTerms fetches the entries behind idts from the backend and caches
// one match per idt, so that later queries listing the same idts in
// MatchOptions.Idts can offer them without another store query.
//
// Each match is cached under FixedTermKey(idt.ID, idt.Str), using the
// requested term string even when the entry lacks that term and its first
// term is used instead. Idts whose entry is not returned are skipped. A
// store error is returned as is and leaves the cache untouched.
//
// An empty idts resolves without querying the store, as an empty ID filter
// would request every entry.
func (d *Dictionary) LoadFixedTerms(ctx context.Context, idts []types.Idt, opts types.EntryOptions) *Future[struct{}] {
	return Go(func() (struct{}, error) {
		if len(idts) == 0 {
			return struct{}{}, nil
		}
		if d.backend == nil {
			return struct{}{}, ErrNoBackend
		}

		q := opts.Clone()
		q.Filter.ID = make([]string, len(idts))
		for i, idt := range idts {
			q.Filter.ID[i] = idt.ID
		}
		q.Page = 1
		q.PerPage = len(idts)

		res, err := d.backend.GetEntries(ctx, q)
		if err != nil {
			return struct{}{}, err
		}

		built := make(map[string]types.Match, len(idts))
		for _, idt := range idts {
			i := slices.IndexFunc(res.Items, func(e types.Entry) bool { return e.ID == idt.ID })
			if i < 0 {
				continue
			}
			entry := res.Items[i]
			if len(entry.Terms) == 0 {
				d.log.Warn("skipping fixed term for entry without terms", "id", entry.ID)
				continue
			}

			pos := -1
			if idt.Str != "" {
				pos = slices.IndexFunc(entry.Terms, func(t types.Term) bool { return t.Str == idt.Str })
			}
			if pos < 0 {
				pos = 0
			}
			built[FixedTermKey(idt.ID, idt.Str)] = EntryToMatch(entry, pos, types.MatchFixed).Clone()
		}

		d.mu.Lock()
		maps.Copy(d.fixedTerms, built)
		size := len(d.fixedTerms)
		d.mu.Unlock()

		d.log.Debug("loaded fixed terms", "requested", len(idts), "cached", len(built), "total", size)
		return struct{}{}, nil
	})
}

// FixedTerms returns a copy of the fixed-term cache.
func (d *Dictionary) FixedTerms() map[string]types.Match {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]types.Match, len(d.fixedTerms))
	for k, m := range d.fixedTerms {
		out[k] = m.Clone()
	}
	return out
}

// FixedMatchesForString returns the cached fixed terms among opts.Idts whose
// string contains str, case-insensitively. A match at the start of the term
// is typed F, one further in is typed G. Results are copies, sorted by type,
// str, dictID and numeric ID, and z-pruned by opts.Z.
func (d *Dictionary) FixedMatchesForString(str string, opts types.MatchOptions) []types.Match {
	out := []types.Match{}
	if len(opts.Idts) == 0 {
		return out
	}

	lower := strings.ToLower(str)

	d.mu.RLock()
	for _, idt := range opts.Idts {
		m, ok := d.fixedTerms[FixedTermKey(idt.ID, idt.Str)]
		if !ok {
			continue
		}

		s := strings.ToLower(m.Str)
		var t types.MatchType
		switch {
		case strings.HasPrefix(s, lower):
			t = types.MatchFixed
		case strings.Contains(s, lower):
			t = types.MatchFixedInfix
		default:
			continue
		}

		c := m.Clone()
		c.Type = t
		out = append(out, c)
	}
	d.mu.RUnlock()

	slices.SortStableFunc(out, compareMatches)
	return ZPropPrune(out, opts.Z)
}

func compareMatches(a, b types.Match) int {
	return cmp.Or(
		strings.Compare(string(a.Type), string(b.Type)),
		strings.Compare(a.Str, b.Str),
		strings.Compare(a.DictID, b.DictID),
		compareNumericIDs(a.ID, b.ID),
	)
}

// compareNumericIDs orders IDs by numeric value. IDs that are not both
// numbers compare equal, leaving their order to the stable sort.
func compareNumericIDs(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		return 0
	}
	return cmp.Compare(fa, fb)
}
