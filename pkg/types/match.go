// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MatchType is the one-character tag that says where a match came from.
type MatchType string

const (
	// MatchFixed is a fixed term whose string starts with the search string.
	MatchFixed MatchType = "F"
	// MatchFixedInfix is a fixed term that contains the search string elsewhere.
	MatchFixedInfix MatchType = "G"
	// MatchNumber is a synthetic match for a numeric search string.
	MatchNumber MatchType = "N"
	// MatchRefTerm is a referring term such as "it" or "this".
	MatchRefTerm MatchType = "R"
	// MatchPrefix is a free-text backend match on a term's start.
	MatchPrefix MatchType = "S"
	// MatchInfix is a free-text backend match inside a term.
	MatchInfix MatchType = "T"
)

// Match is one candidate result for a search string.
type Match struct {
	ID     string         `json:"id" yaml:"id"`
	DictID string         `json:"dictID" yaml:"dictID"`
	Str    string         `json:"str" yaml:"str"`
	Style  string         `json:"style,omitempty" yaml:"style,omitempty"`
	Descr  string         `json:"descr,omitempty" yaml:"descr,omitempty"`
	Type   MatchType      `json:"type" yaml:"type"`
	Terms  []Term         `json:"terms,omitempty" yaml:"terms,omitempty"`
	Z      map[string]any `json:"z,omitempty" yaml:"z,omitempty"`
}

// Clone returns a copy of m that shares no slices or maps with it.
func (m Match) Clone() Match {
	if m.Terms != nil {
		terms := make([]Term, len(m.Terms))
		copy(terms, m.Terms)
		m.Terms = terms
	}
	if m.Z != nil {
		m.Z = CloneZ(m.Z)
	}
	return m
}

// CloneZ deep-copies a z-object. Nested maps and slices are copied; other
// values are copied by assignment.
func CloneZ(z map[string]any) map[string]any {
	if z == nil {
		return nil
	}
	out := make(map[string]any, len(z))
	for k, v := range z {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return CloneZ(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out
	default:
		return v
	}
}
