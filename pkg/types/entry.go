// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the dictionary core, its
// backends and the CLI.
package types

// DictInfo describes one sub-dictionary that owns entries.
type DictInfo struct {
	// ID is the dictionary identifier referenced by Entry.DictID.
	ID string `json:"id" yaml:"id"`

	// Abbrev is an optional short label.
	Abbrev string `json:"abbrev,omitempty" yaml:"abbrev,omitempty"`

	// Name is the human-readable dictionary name.
	Name string `json:"name" yaml:"name"`
}

// Term is one string by which a concept can be referred to.
type Term struct {
	Str   string `json:"str" yaml:"str"`
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	Descr string `json:"descr,omitempty" yaml:"descr,omitempty"`
}

// Entry is a concept record as kept by an entry store. The first term is the
// entry's preferred term.
type Entry struct {
	ID     string         `json:"id" yaml:"id"`
	DictID string         `json:"dictID" yaml:"dictID"`
	Descr  string         `json:"descr,omitempty" yaml:"descr,omitempty"`
	Terms  []Term         `json:"terms" yaml:"terms"`
	Z      map[string]any `json:"z,omitempty" yaml:"z,omitempty"`
}

// Idt identifies one fixed term: a concept ID plus an optional term string.
type Idt struct {
	ID  string `json:"id" yaml:"id"`
	Str string `json:"str,omitempty" yaml:"str,omitempty"`
}
