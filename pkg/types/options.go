// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ZOption selects which properties of a z-object survive pruning.
//
// A nil ZOption keeps the z-object whole. A non-nil list keeps only the
// named properties, so an empty non-nil list removes z altogether.
type ZOption []string

// ZAll keeps every z property.
var ZAll ZOption

// ZNone drops the z-object.
var ZNone = ZOption{}

// EntryFilter restricts which entries GetEntries returns. Empty lists do not
// filter.
type EntryFilter struct {
	ID     []string `json:"id,omitempty" yaml:"id,omitempty"`
	DictID []string `json:"dictID,omitempty" yaml:"dictID,omitempty"`
}

// EntryOptions is the query passed to an entry store.
type EntryOptions struct {
	Filter EntryFilter `json:"filter" yaml:"filter"`

	// Sort is "dictID" (default) or "id".
	Sort string `json:"sort,omitempty" yaml:"sort,omitempty"`

	Z       ZOption `json:"z,omitempty" yaml:"z,omitempty"`
	Page    int     `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage int     `json:"perPage,omitempty" yaml:"perPage,omitempty"`
}

// Clone returns a copy of o that shares no slices with it.
func (o EntryOptions) Clone() EntryOptions {
	o.Filter.ID = cloneStrings(o.Filter.ID)
	o.Filter.DictID = cloneStrings(o.Filter.DictID)
	if o.Z != nil {
		o.Z = ZOption(cloneStrings(o.Z))
	}
	return o
}

// EntryPage is one page of GetEntries results.
type EntryPage struct {
	Items []Entry `json:"items" yaml:"items"`
}

// MatchFilter restricts free-text matching to some dictionaries.
type MatchFilter struct {
	DictID []string `json:"dictID,omitempty" yaml:"dictID,omitempty"`
}

// MatchOptions is the query for string matching.
type MatchOptions struct {
	Filter MatchFilter `json:"filter" yaml:"filter"`

	// Idts lists the fixed terms that may be offered for this query.
	// Fixed-term lookup only happens when it is non-empty.
	Idts []Idt `json:"idts,omitempty" yaml:"idts,omitempty"`

	Z       ZOption `json:"z,omitempty" yaml:"z,omitempty"`
	Page    int     `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage int     `json:"perPage,omitempty" yaml:"perPage,omitempty"`
}

// PageOrFirst returns the requested page, treating unset as page 1.
func (o MatchOptions) PageOrFirst() int {
	if o.Page < 1 {
		return 1
	}
	return o.Page
}

// MatchPage is one page of match results.
type MatchPage struct {
	Items []Match `json:"items" yaml:"items"`
}

// RefTermFilter restricts GetRefTerms to exact strings.
type RefTermFilter struct {
	Str []string `json:"str,omitempty" yaml:"str,omitempty"`
}

// RefTermOptions is the query for referring terms.
type RefTermOptions struct {
	Filter  RefTermFilter `json:"filter" yaml:"filter"`
	Page    int           `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage int           `json:"perPage,omitempty" yaml:"perPage,omitempty"`
}

// RefTermPage is one page of referring terms.
type RefTermPage struct {
	Items []string `json:"items" yaml:"items"`
}

// DictInfoOptions is the query for dictionary infos.
type DictInfoOptions struct {
	Filter  EntryFilter `json:"filter" yaml:"filter"`
	Page    int         `json:"page,omitempty" yaml:"page,omitempty"`
	PerPage int         `json:"perPage,omitempty" yaml:"perPage,omitempty"`
}

// DictInfoPage is one page of dictionary infos.
type DictInfoPage struct {
	Items []DictInfo `json:"items" yaml:"items"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
