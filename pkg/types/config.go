// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Defaults for number matching.
const (
	DefaultNumberDictID          = "00"
	DefaultNumberConceptIDPrefix = "00:"
)

// NumberMatchConfig controls the synthetic match made for numeric search
// strings. Empty DictID and ConceptIDPrefix fall back to the defaults.
type NumberMatchConfig struct {
	// Disabled turns number matching off.
	Disabled bool `json:"disabled" yaml:"disabled"`

	// DictID is the dictionary ID given to number matches (default "00").
	DictID string `json:"dict_id" yaml:"dict_id"`

	// ConceptIDPrefix is prepended to the canonical number to form the
	// concept ID (default "00:").
	ConceptIDPrefix string `json:"concept_id_prefix" yaml:"concept_id_prefix"`
}

// WithDefaults returns c with empty fields set to their defaults.
func (c NumberMatchConfig) WithDefaults() NumberMatchConfig {
	if c.DictID == "" {
		c.DictID = DefaultNumberDictID
	}
	if c.ConceptIDPrefix == "" {
		c.ConceptIDPrefix = DefaultNumberConceptIDPrefix
	}
	return c
}

// MatchDescrs holds the descr given to synthetic matches.
type MatchDescrs struct {
	// Number is the descr of number matches (default "number").
	Number string `json:"number" yaml:"number"`

	// RefTerm is the descr of referring-term matches (default "referring term").
	RefTerm string `json:"ref_term" yaml:"ref_term"`
}

// DictionaryConfig holds settings for the matching core.
type DictionaryConfig struct {
	NumberMatch NumberMatchConfig `json:"number_match" yaml:"number_match"`
	Descrs      MatchDescrs       `json:"descrs" yaml:"descrs"`
}

// StoreConfig holds settings for the SQLite entry store.
type StoreConfig struct {
	// Path is the database file. Its directory is created when missing.
	Path string `json:"path" yaml:"path"`

	// PerPage is the default page size for queries (default 20).
	PerPage int `json:"per_page" yaml:"per_page"`
}

// Config groups all settings read by the CLI.
type Config struct {
	Dictionary DictionaryConfig `json:"dictionary" yaml:"dictionary"`
	Store      StoreConfig      `json:"store" yaml:"store"`

	// LogLevel is one of debug, info, warn, error (default warn).
	LogLevel string `json:"log_level" yaml:"log_level"`
}
