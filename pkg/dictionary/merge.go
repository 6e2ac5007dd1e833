// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// AddExtraMatchesForString merges fixed-term and number matches for str into
// the backend matches arr. arr is not modified. Only page 1 is augmented;
// for later pages arr comes back unchanged.
func (d *Dictionary) AddExtraMatchesForString(ctx context.Context, str string, arr []types.Match, opts types.MatchOptions) *Future[[]types.Match] {
	return Go(func() ([]types.Match, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return d.mergeExtraMatches(str, arr, opts), nil
	})
}

// GetMatchesForString asks the backend for free-text matches of str and,
// on page 1, whether str is a referring term. The two lookups run
// concurrently. A referring-term match goes first, then the backend
// matches, and the result is passed through AddExtraMatchesForString.
func (d *Dictionary) GetMatchesForString(ctx context.Context, str string, opts types.MatchOptions) *Future[types.MatchPage] {
	return Go(func() (types.MatchPage, error) {
		if d.backend == nil {
			return types.MatchPage{}, ErrNoBackend
		}

		var (
			refTerms types.RefTermPage
			matches  types.MatchPage
		)
		g, gctx := errgroup.WithContext(ctx)
		if str != "" && opts.PageOrFirst() == 1 {
			g.Go(func() error {
				var err error
				refTerms, err = d.backend.GetRefTerms(gctx, types.RefTermOptions{
					Filter: types.RefTermFilter{Str: []string{str}},
				})
				return err
			})
		}
		g.Go(func() error {
			var err error
			matches, err = d.backend.GetEntryMatchesForString(gctx, str, opts)
			return err
		})
		if err := g.Wait(); err != nil {
			return types.MatchPage{}, err
		}

		arr := make([]types.Match, 0, len(matches.Items)+1)
		if len(refTerms.Items) > 0 {
			arr = append(arr, d.RefTermToMatch(refTerms.Items[0]))
		}
		arr = append(arr, matches.Items...)

		return types.MatchPage{Items: d.mergeExtraMatches(str, arr, opts)}, nil
	})
}

// mergeExtraMatches orders the result as: number match, one leading
// referring-term match, fixed-term matches, backend matches.
func (d *Dictionary) mergeExtraMatches(str string, arr []types.Match, opts types.MatchOptions) []types.Match {
	if opts.PageOrFirst() > 1 {
		return arr
	}
	out := slices.Clone(arr)

	if fixed := d.FixedMatchesForString(str, opts); len(fixed) > 0 {
		merged := make([]types.Match, 0, len(fixed)+len(out))
		if len(out) > 0 && out[0].Type == types.MatchRefTerm {
			merged = append(merged, out[0])
			out = out[1:]
		}
		merged = append(merged, fixed...)
		merged = append(merged, out...)
		out = dedupMatches(merged)
	}

	if nm, ok := d.NumberMatchForString(str); ok {
		// A backend match with the number's ID takes its place.
		if j := slices.IndexFunc(out, func(m types.Match) bool { return m.ID == nm.ID }); j >= 0 {
			nm = out[j]
			out = slices.Delete(out, j, j+1)
			d.log.Debug("reusing backend match as number match", "id", nm.ID)
		}
		nm.Type = types.MatchNumber
		if nm.Descr == "" {
			nm.Descr = d.descrs.Number
		}
		out = slices.Insert(out, 0, nm)
	}

	if out == nil {
		out = []types.Match{}
	}
	return out
}

// dedupMatches keeps the first match for every (id, str) pair.
func dedupMatches(matches []types.Match) []types.Match {
	seen := make(map[string]struct{}, len(matches))
	out := make([]types.Match, 0, len(matches))
	for _, m := range matches {
		key := FixedTermKey(m.ID, m.Str)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}
