// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import "github.com/vsmjs/vsm-dictionary/pkg/types"

// FixedTermKey returns the fixed-term cache key for a concept ID and an
// optional term string. Concept IDs never contain a newline, so the pair
// maps to a unique key.
func FixedTermKey(conceptID, termStr string) string {
	return conceptID + "\n" + termStr
}

// EntryToMatch builds a match from an entry and the term at termPos. The
// term's own str, style and descr override the entry's. termPos must be a
// valid index into entry.Terms.
//
// The result shares Terms and Z with entry; Clone it before handing it out
// if entry may change.
func EntryToMatch(entry types.Entry, termPos int, matchType types.MatchType) types.Match {
	term := entry.Terms[termPos]
	m := types.Match{
		ID:     entry.ID,
		DictID: entry.DictID,
		Descr:  entry.Descr,
		Terms:  entry.Terms,
		Z:      entry.Z,
		Type:   matchType,
	}
	m.Str = term.Str
	if term.Style != "" {
		m.Style = term.Style
	}
	if term.Descr != "" {
		m.Descr = term.Descr
	}
	return m
}

// RefTermToMatch wraps a referring term into a match.
func (d *Dictionary) RefTermToMatch(refTerm string) types.Match {
	return types.Match{
		ID:     "",
		DictID: "",
		Str:    refTerm,
		Descr:  d.descrs.RefTerm,
		Type:   types.MatchRefTerm,
	}
}
