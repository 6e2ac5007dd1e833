package dictionary

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- stub backend ---

var (
	zFull = map[string]any{"a": 1, "b": 2}
	zB    = map[string]any{"b": 2}
)

// stubBackend generates an entry for every requested ID except "" and "x".
// Entry <id> has terms <id>1 and <id>2 and z-object zFull, or zB when the
// query's z option starts with "b". entries, when set, replaces generation.
type stubBackend struct {
	mu         sync.Mutex
	calls      int
	lastOpts   types.EntryOptions
	entries    []types.Entry
	entriesErr error

	matches    []types.Match
	matchesErr error
	refTerms   []string
	refErr     error
}

func (s *stubBackend) GetEntries(_ context.Context, opts types.EntryOptions) (types.EntryPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastOpts = opts
	if s.entriesErr != nil {
		return types.EntryPage{}, s.entriesErr
	}
	if s.entries != nil {
		var items []types.Entry
		for _, e := range s.entries {
			if slices.Contains(opts.Filter.ID, e.ID) {
				items = append(items, e)
			}
		}
		return types.EntryPage{Items: items}, nil
	}

	z := zFull
	if len(opts.Z) > 0 && opts.Z[0] == "b" {
		z = zB
	}
	var items []types.Entry
	for _, id := range opts.Filter.ID {
		if id == "" || id == "x" {
			continue
		}
		items = append(items, types.Entry{
			ID:     id,
			DictID: "X",
			Terms:  []types.Term{{Str: id + "1"}, {Str: id + "2"}},
			Z:      types.CloneZ(z),
		})
	}
	return types.EntryPage{Items: items}, nil
}

func (s *stubBackend) GetEntryMatchesForString(_ context.Context, _ string, _ types.MatchOptions) (types.MatchPage, error) {
	if s.matchesErr != nil {
		return types.MatchPage{}, s.matchesErr
	}
	items := make([]types.Match, len(s.matches))
	for i, m := range s.matches {
		items[i] = m.Clone()
	}
	return types.MatchPage{Items: items}, nil
}

func (s *stubBackend) GetRefTerms(_ context.Context, opts types.RefTermOptions) (types.RefTermPage, error) {
	if s.refErr != nil {
		return types.RefTermPage{}, s.refErr
	}
	items := []string{}
	for _, str := range opts.Filter.Str {
		if slices.Contains(s.refTerms, str) {
			items = append(items, str)
		}
	}
	return types.RefTermPage{Items: items}, nil
}

func (s *stubBackend) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestDictionary(b Backend) *Dictionary {
	return New(b, types.DictionaryConfig{})
}

// preloadFixture fills the cache as:
//
//	"a\n"   -> a1 (z pruned to b)
//	"b\n"   -> b1
//	"c\nc2" -> c2
//	"d\nd1" -> d1
func preloadFixture(t *testing.T, d *Dictionary) {
	t.Helper()
	ctx := context.Background()
	_, err := d.LoadFixedTerms(ctx, []types.Idt{{ID: "a"}}, types.EntryOptions{Z: types.ZOption{"b"}}).Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.LoadFixedTerms(ctx,
		[]types.Idt{{ID: "b"}, {ID: "c", Str: "c2"}, {ID: "d", Str: "d1"}},
		types.EntryOptions{}).Wait(ctx)
	if err != nil {
		t.Fatal(err)
	}
}

// --- extra dict infos ---

func TestGetExtraDictInfos(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.NumberMatchConfig
		want []types.DictInfo
	}{
		{"default", types.NumberMatchConfig{}, []types.DictInfo{{ID: "00", Name: "Numbers"}}},
		{"custom", types.NumberMatchConfig{DictID: "XX", ConceptIDPrefix: "XX:"}, []types.DictInfo{{ID: "XX", Name: "Numbers"}}},
		{"disabled", types.NumberMatchConfig{Disabled: true}, []types.DictInfo{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(nil, types.DictionaryConfig{NumberMatch: tt.cfg})
			assert.Equal(t, tt.want, d.GetExtraDictInfos())
		})
	}
}

func TestNilBackend(t *testing.T) {
	d := New(nil, types.DictionaryConfig{})
	ctx := context.Background()

	_, err := d.LoadFixedTerms(ctx, []types.Idt{{ID: "a"}}, types.EntryOptions{}).Wait(ctx)
	assert.ErrorIs(t, err, ErrNoBackend)

	_, err = d.GetMatchesForString(ctx, "a", types.MatchOptions{}).Wait(ctx)
	assert.ErrorIs(t, err, ErrNoBackend)
}
