// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"slices"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// ZPrune returns the part of z that opt keeps. A nil opt keeps z as is;
// otherwise a new map holding only the listed keys is returned, or nil
// when none of them is present.
func ZPrune(z map[string]any, opt types.ZOption) map[string]any {
	if opt == nil || z == nil {
		return z
	}
	out := make(map[string]any, len(opt))
	for _, k := range opt {
		if v, ok := z[k]; ok {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ZPropPrune applies ZPrune to the z-object of every match. It rewrites the
// elements of matches in place and returns the slice. The z maps themselves
// are never modified.
func ZPropPrune(matches []types.Match, opt types.ZOption) []types.Match {
	if opt == nil {
		return matches
	}
	for i := range matches {
		matches[i].Z = ZPrune(matches[i].Z, opt)
	}
	return matches
}

// PrepTerms drops terms without a string and repeated term strings, keeping
// the first occurrence. The input is not modified.
func PrepTerms(terms []types.Term) []types.Term {
	out := make([]types.Term, 0, len(terms))
	for _, t := range terms {
		if t.Str == "" {
			continue
		}
		if slices.ContainsFunc(out, func(o types.Term) bool { return o.Str == t.Str }) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// PrepEntry returns a copy of e with its terms prepared by PrepTerms and its
// z-object deep-copied, ready to be stored.
func PrepEntry(e types.Entry) types.Entry {
	e.Terms = PrepTerms(e.Terms)
	e.Z = types.CloneZ(e.Z)
	if len(e.Z) == 0 {
		e.Z = nil
	}
	return e
}
