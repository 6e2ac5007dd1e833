package seed

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsmjs/vsm-dictionary/internal/store"
	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

const sampleSeed = `dictInfos:
  - id: BIO
    abbrev: bio
    name: Biology
entries:
  - id: BIO:01
    dictID: BIO
    descr: a plant
    terms:
      - str: tree
      - str: Tree
        style: i
    z:
      rank: species
  - id: BIO:02
    dictID: BIO
    terms:
      - str: bush
refTerms:
  - it
  - they
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	doc, err := Load(writeSeed(t, sampleSeed))
	require.NoError(t, err)

	assert.Equal(t, []types.DictInfo{{ID: "BIO", Abbrev: "bio", Name: "Biology"}}, doc.DictInfos)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, types.Entry{
		ID: "BIO:01", DictID: "BIO", Descr: "a plant",
		Terms: []types.Term{{Str: "tree"}, {Str: "Tree", Style: "i"}},
		Z:     map[string]any{"rank": "species"},
	}, doc.Entries[0])
	assert.Equal(t, []string{"it", "they"}, doc.RefTerms)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeSeed(t, "entries: [unclosed"))
	assert.Error(t, err)
}

// recordingManager is a dictionary.Manager that records the calls it gets.
type recordingManager struct {
	dictionary.Manager
	calls      []string
	entriesErr error
}

func (m *recordingManager) AddDictInfos(_ context.Context, infos []types.DictInfo) error {
	m.calls = append(m.calls, "dictInfos")
	return nil
}

func (m *recordingManager) AddEntries(_ context.Context, entries []types.Entry) error {
	m.calls = append(m.calls, "entries")
	return m.entriesErr
}

func (m *recordingManager) AddRefTerms(_ context.Context, refTerms []string) error {
	m.calls = append(m.calls, "refTerms")
	return nil
}

func TestApplyOrder(t *testing.T) {
	doc, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)

	m := &recordingManager{}
	var out bytes.Buffer
	summary, err := Apply(context.Background(), m, doc, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{"dictInfos", "entries", "refTerms"}, m.calls)
	assert.Equal(t, Summary{DictInfos: 1, Entries: 2, RefTerms: 2}, summary)
	assert.Equal(t, 5, summary.Total())
	assert.Contains(t, out.String(), "dict infos: 1, entries: 2, ref terms: 2")
}

func TestApplyStopsOnError(t *testing.T) {
	doc, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)

	errEntries := errors.New("no room")
	m := &recordingManager{entriesErr: errEntries}
	summary, err := Apply(context.Background(), m, doc, &bytes.Buffer{})
	assert.ErrorIs(t, err, errEntries)
	assert.Equal(t, []string{"dictInfos", "entries"}, m.calls)
	assert.Equal(t, 1, summary.DictInfos)
	assert.Zero(t, summary.RefTerms)
}

func TestApplySkipsEmptySections(t *testing.T) {
	m := &recordingManager{}
	_, err := Apply(context.Background(), m, Document{RefTerms: []string{"it"}}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"refTerms"}, m.calls)
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "dictionary.db")})
	require.NoError(t, err)
	defer s.Close()

	doc, err := Parse([]byte(sampleSeed))
	require.NoError(t, err)
	_, err = Apply(ctx, s, doc, &bytes.Buffer{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(ctx, s, &buf))

	again, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}
