// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dictionary is the matching core of a concept dictionary. Given a
// search string it assembles one ordered, deduplicated list of matches from
// preloaded fixed terms, a synthetic number match, an optional referring
// term, and the free-text matches of a pluggable Backend.
//
// Backends supply storage and free-text search; this package only decides
// which matches appear and in what order:
//
//	number match -> referring term -> fixed terms -> backend matches
//
// with (id, str) duplicates collapsed onto their earliest occurrence.
package dictionary

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vsmjs/vsm-dictionary/internal/logger"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// ErrNoBackend is returned by operations that need a backend when the
// Dictionary was built without one.
var ErrNoBackend = errors.New("dictionary: no backend configured")

const (
	defaultNumberDescr  = "number"
	defaultRefTermDescr = "referring term"
	numbersDictName     = "Numbers"
)

// EntryStore retrieves entries by ID or dictionary.
type EntryStore interface {
	GetEntries(ctx context.Context, opts types.EntryOptions) (types.EntryPage, error)
}

// MatchSource performs free-text matching of a string against entry terms.
type MatchSource interface {
	GetEntryMatchesForString(ctx context.Context, str string, opts types.MatchOptions) (types.MatchPage, error)
}

// RefTermSource lists referring terms.
type RefTermSource interface {
	GetRefTerms(ctx context.Context, opts types.RefTermOptions) (types.RefTermPage, error)
}

// Backend is everything the core needs from a concrete dictionary
// implementation.
type Backend interface {
	EntryStore
	MatchSource
	RefTermSource
}

// Manager is the editing side of a concrete dictionary. The core never
// calls it; it is implemented by stores and used by tooling.
type Manager interface {
	AddDictInfos(ctx context.Context, infos []types.DictInfo) error
	AddEntries(ctx context.Context, entries []types.Entry) error
	AddRefTerms(ctx context.Context, refTerms []string) error

	UpdateDictInfos(ctx context.Context, infos []types.DictInfo) error
	UpdateEntries(ctx context.Context, entries []types.Entry) error

	DeleteDictInfos(ctx context.Context, dictIDs []string) error
	DeleteEntries(ctx context.Context, conceptIDs []string) error
	DeleteRefTerms(ctx context.Context, refTerms []string) error

	GetDictInfos(ctx context.Context, opts types.DictInfoOptions) (types.DictInfoPage, error)
}

// Dictionary combines a Backend with the fixed-term cache and the synthetic
// match rules. It is safe for concurrent use.
type Dictionary struct {
	backend     Backend
	numberMatch types.NumberMatchConfig
	descrs      types.MatchDescrs
	log         *log.Logger

	mu         sync.RWMutex
	fixedTerms map[string]types.Match
}

// Option customizes a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(d *Dictionary) {
		if l != nil {
			d.log = l
		}
	}
}

// New returns a Dictionary over backend. backend may be nil when only the
// pure matching functions are needed.
func New(backend Backend, cfg types.DictionaryConfig, opts ...Option) *Dictionary {
	descrs := cfg.Descrs
	if descrs.Number == "" {
		descrs.Number = defaultNumberDescr
	}
	if descrs.RefTerm == "" {
		descrs.RefTerm = defaultRefTermDescr
	}

	d := &Dictionary{
		backend:     backend,
		numberMatch: cfg.NumberMatch.WithDefaults(),
		descrs:      descrs,
		log:         logger.Discard(),
		fixedTerms:  make(map[string]types.Match),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Backend returns the backend the Dictionary was built with.
func (d *Dictionary) Backend() Backend {
	return d.backend
}

// GetExtraDictInfos returns the dictionary infos for dictionary IDs the
// core itself puts on matches. That is the numbers dictionary, unless
// number matching is disabled.
func (d *Dictionary) GetExtraDictInfos() []types.DictInfo {
	if d.numberMatch.Disabled {
		return []types.DictInfo{}
	}
	return []types.DictInfo{{ID: d.numberMatch.DictID, Name: numbersDictName}}
}
