package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

func newMatchFixture(t *testing.T) (*Dictionary, *stubBackend) {
	t.Helper()
	b := &stubBackend{refTerms: []string{"it", "this", "that", "they", "these", "them"}}
	d := newTestDictionary(b)
	preloadFixture(t, d)
	return d, b
}

func TestGetMatchesForString(t *testing.T) {
	ctx := context.Background()

	t.Run("fixed terms go before backend matches and win duplicates", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matches = []types.Match{
			{ID: "x", DictID: "X", Str: "x9", Type: "S"},
			{ID: "c", DictID: "X", Str: "c2", Type: "S"},
			{ID: "y", DictID: "X", Str: "y9", Type: "T"},
		}
		opts := types.MatchOptions{Idts: []types.Idt{{ID: "c", Str: "c2"}, {ID: "a"}}}

		res, err := d.GetMatchesForString(ctx, "", opts).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "a", DictID: "X", Str: "a1", Type: "F", Terms: termsOf("a"), Z: zB},
			{ID: "c", DictID: "X", Str: "c2", Type: "F", Terms: termsOf("c"), Z: zFull},
			{ID: "x", DictID: "X", Str: "x9", Type: "S"},
			{ID: "y", DictID: "X", Str: "y9", Type: "T"},
		}, res.Items)
	})

	t.Run("page 2 gets nothing added and nothing removed", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matches = []types.Match{{ID: "c", DictID: "X", Str: "c2", Type: "S"}}
		opts := types.MatchOptions{
			Idts: []types.Idt{{ID: "c", Str: "c2"}, {ID: "a"}},
			Page: 2,
		}

		res, err := d.GetMatchesForString(ctx, "", opts).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{{ID: "c", DictID: "X", Str: "c2", Type: "S"}}, res.Items)
	})

	t.Run("number match goes first", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matches = []types.Match{{ID: "c", DictID: "X", Str: "c2", Type: "S"}}

		res, err := d.GetMatchesForString(ctx, "10.5", types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "00:1.05e+1", DictID: "00", Str: "10.5", Descr: "number", Type: "N"},
			{ID: "c", DictID: "X", Str: "c2", Type: "S"},
		}, res.Items)
	})

	t.Run("backend match for the number is moved up and retyped", func(t *testing.T) {
		d, b := newMatchFixture(t)
		twelve := types.Match{
			ID: "00:1.2e+1", DictID: "00", Str: "12", Descr: "the amount of twelve",
			Terms: []types.Term{{Str: "12"}, {Str: "twelve"}, {Str: "dozen"}}, Type: "S",
		}
		b.matches = []types.Match{{ID: "c", DictID: "X", Str: "c2", Type: "S"}, twelve}

		res, err := d.GetMatchesForString(ctx, "12", types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)

		want := twelve
		want.Type = "N"
		assert.Equal(t, []types.Match{want, {ID: "c", DictID: "X", Str: "c2", Type: "S"}}, res.Items)
	})

	t.Run("reused number match gets a default descr", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matches = []types.Match{
			{ID: "00:1.2e+1", DictID: "00", Str: "12", Terms: []types.Term{{Str: "12"}}, Type: "S"},
		}

		res, err := d.GetMatchesForString(ctx, "12", types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "00:1.2e+1", DictID: "00", Str: "12", Terms: []types.Term{{Str: "12"}}, Type: "N", Descr: "number"},
		}, res.Items)
	})

	t.Run("referring term goes first", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matches = []types.Match{{ID: "c", DictID: "X", Str: "c2", Type: "S"}}

		res, err := d.GetMatchesForString(ctx, "it", types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "", DictID: "", Str: "it", Descr: "referring term", Type: "R"},
			{ID: "c", DictID: "X", Str: "c2", Type: "S"},
		}, res.Items)
	})

	t.Run("backend errors are returned", func(t *testing.T) {
		d, b := newMatchFixture(t)
		b.matchesErr = errors.New("backend down")

		_, err := d.GetMatchesForString(ctx, "a", types.MatchOptions{}).Wait(ctx)
		assert.EqualError(t, err, "backend down")

		b.matchesErr = nil
		b.refErr = errors.New("refs down")
		_, err = d.GetMatchesForString(ctx, "a", types.MatchOptions{}).Wait(ctx)
		assert.EqualError(t, err, "refs down")
	})

	t.Run("no matches gives an empty list", func(t *testing.T) {
		d, _ := newMatchFixture(t)
		res, err := d.GetMatchesForString(ctx, "zzz", types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})
}

func TestAddExtraMatchesForString(t *testing.T) {
	ctx := context.Background()
	d, _ := newMatchFixture(t)

	t.Run("referring term stays ahead of fixed terms, number goes ahead of both", func(t *testing.T) {
		arr := []types.Match{
			{Str: "5", Descr: "referring term", Type: "R"},
			{ID: "b", DictID: "X", Str: "b1", Type: "S"},
		}
		got, err := d.AddExtraMatchesForString(ctx, "5", arr, types.MatchOptions{}).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "00:5e+0", DictID: "00", Str: "5", Descr: "number", Type: "N"},
			{Str: "5", Descr: "referring term", Type: "R"},
			{ID: "b", DictID: "X", Str: "b1", Type: "S"},
		}, got)
	})

	t.Run("fixed terms merge after a leading referring term", func(t *testing.T) {
		arr := []types.Match{
			{Str: "b", Descr: "referring term", Type: "R"},
			{ID: "b", DictID: "X", Str: "b1", Type: "S"},
			{ID: "z", DictID: "X", Str: "zb", Type: "T"},
		}
		opts := types.MatchOptions{Idts: []types.Idt{{ID: "b"}}, Z: types.ZNone}
		got, err := d.AddExtraMatchesForString(ctx, "b", arr, opts).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{Str: "b", Descr: "referring term", Type: "R"},
			{ID: "b", DictID: "X", Str: "b1", Type: "F", Terms: termsOf("b")},
			{ID: "z", DictID: "X", Str: "zb", Type: "T"},
		}, got)
	})

	t.Run("a referring term that is not first is not moved", func(t *testing.T) {
		arr := []types.Match{
			{ID: "q", DictID: "X", Str: "qb", Type: "T"},
			{Str: "b", Type: "R"},
		}
		opts := types.MatchOptions{Idts: []types.Idt{{ID: "b"}}, Z: types.ZNone}
		got, err := d.AddExtraMatchesForString(ctx, "b", arr, opts).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Match{
			{ID: "b", DictID: "X", Str: "b1", Type: "F", Terms: termsOf("b")},
			{ID: "q", DictID: "X", Str: "qb", Type: "T"},
			{Str: "b", Type: "R"},
		}, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		arr := []types.Match{
			{ID: "c", DictID: "X", Str: "c2", Type: "S"},
			{ID: "00:1.2e+1", DictID: "00", Str: "12", Type: "S"},
		}
		orig := []types.Match{arr[0], arr[1]}
		opts := types.MatchOptions{Idts: []types.Idt{{ID: "c", Str: "c2"}}}

		_, err := d.AddExtraMatchesForString(ctx, "12", arr, opts).Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, orig, arr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := d.AddExtraMatchesForString(cctx, "a", nil, types.MatchOptions{}).Wait(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDedupMatches(t *testing.T) {
	in := []types.Match{
		{ID: "a", Str: "x", Type: "F"},
		{ID: "a", Str: "y", Type: "S"},
		{ID: "a", Str: "x", Type: "S"},
		{ID: "b", Str: "x", Type: "S"},
	}
	assert.Equal(t, []types.Match{
		{ID: "a", Str: "x", Type: "F"},
		{ID: "a", Str: "y", Type: "S"},
		{ID: "b", Str: "x", Type: "S"},
	}, dedupMatches(in))
}
