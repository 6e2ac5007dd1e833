// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seed reads and writes YAML seed files: whole dictionaries with
// their entries and referring terms, in a form that can be applied to any
// dictionary.Manager.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// Document is the content of one seed file.
type Document struct {
	DictInfos []types.DictInfo `yaml:"dictInfos,omitempty"`
	Entries   []types.Entry    `yaml:"entries,omitempty"`
	RefTerms  []string         `yaml:"refTerms,omitempty"`
}

// Summary holds the counts of a seed run.
type Summary struct {
	DictInfos int
	Entries   int
	RefTerms  int
}

// Total returns the number of records applied.
func (s Summary) Total() int {
	return s.DictInfos + s.Entries + s.RefTerms
}

// Load reads and parses the seed file at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a seed document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing seed file: %w", err)
	}
	return doc, nil
}

// Apply adds the dictionary infos, then the entries, then the referring
// terms of doc to m, writing one progress line per section to w. It stops
// at the first section that fails.
func Apply(ctx context.Context, m dictionary.Manager, doc Document, w io.Writer) (Summary, error) {
	var summary Summary

	if len(doc.DictInfos) > 0 {
		if err := m.AddDictInfos(ctx, doc.DictInfos); err != nil {
			return summary, fmt.Errorf("adding dict infos: %w", err)
		}
		summary.DictInfos = len(doc.DictInfos)
		fmt.Fprintf(w, "added   %d dict info(s)\n", summary.DictInfos)
	}

	if len(doc.Entries) > 0 {
		if err := m.AddEntries(ctx, doc.Entries); err != nil {
			return summary, fmt.Errorf("adding entries: %w", err)
		}
		summary.Entries = len(doc.Entries)
		fmt.Fprintf(w, "added   %d entries\n", summary.Entries)
	}

	if len(doc.RefTerms) > 0 {
		if err := m.AddRefTerms(ctx, doc.RefTerms); err != nil {
			return summary, fmt.Errorf("adding ref terms: %w", err)
		}
		summary.RefTerms = len(doc.RefTerms)
		fmt.Fprintf(w, "added   %d ref term(s)\n", summary.RefTerms)
	}

	fmt.Fprintf(w, "\ndict infos: %d, entries: %d, ref terms: %d\n",
		summary.DictInfos, summary.Entries, summary.RefTerms)
	return summary, nil
}

// Source is what Export reads from.
type Source interface {
	dictionary.EntryStore
	dictionary.RefTermSource
	GetDictInfos(ctx context.Context, opts types.DictInfoOptions) (types.DictInfoPage, error)
}

const exportPageSize = 500

// Export writes the whole content of src to w as a seed document that
// Apply can load back.
func Export(ctx context.Context, src Source, w io.Writer) error {
	var doc Document

	for page := 1; ; page++ {
		res, err := src.GetDictInfos(ctx, types.DictInfoOptions{Page: page, PerPage: exportPageSize})
		if err != nil {
			return fmt.Errorf("exporting dict infos: %w", err)
		}
		doc.DictInfos = append(doc.DictInfos, res.Items...)
		if len(res.Items) < exportPageSize {
			break
		}
	}

	for page := 1; ; page++ {
		res, err := src.GetEntries(ctx, types.EntryOptions{Sort: "id", Page: page, PerPage: exportPageSize})
		if err != nil {
			return fmt.Errorf("exporting entries: %w", err)
		}
		doc.Entries = append(doc.Entries, res.Items...)
		if len(res.Items) < exportPageSize {
			break
		}
	}

	for page := 1; ; page++ {
		res, err := src.GetRefTerms(ctx, types.RefTermOptions{Page: page, PerPage: exportPageSize})
		if err != nil {
			return fmt.Errorf("exporting ref terms: %w", err)
		}
		doc.RefTerms = append(doc.RefTerms, res.Items...)
		if len(res.Items) < exportPageSize {
			break
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
