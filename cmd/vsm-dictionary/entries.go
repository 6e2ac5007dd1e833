// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsmjs/vsm-dictionary/internal/store"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// --- entries subcommand ---

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List stored entries",
	Long: `Entries lists the concepts in the database with their terms, ordered by
dictionary ID, or by concept ID with --sort id.`,
	RunE: runEntries,
}

func runEntries(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	ids, _ := cmd.Flags().GetStringSlice("id")
	dictIDs, _ := cmd.Flags().GetStringSlice("dict")
	sort, _ := cmd.Flags().GetString("sort")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.GetEntries(cmd.Context(), types.EntryOptions{
		Filter:  types.EntryFilter{ID: ids, DictID: dictIDs},
		Sort:    sort,
		Z:       zFromFlags(cmd),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return err
	}
	return formatEntries(cmd.OutOrStdout(), res.Items, jsonOutput)
}

func formatEntries(w io.Writer, entries []types.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-10s  %s\n", "ID", "Dict", "Terms")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, e := range entries {
		strs := make([]string, len(e.Terms))
		for i, t := range e.Terms {
			strs[i] = t.Str
		}
		fmt.Fprintf(w, "%-20s  %-10s  %s\n", truncate(e.ID, 20), truncate(e.DictID, 10), strings.Join(strs, " | "))
	}

	fmt.Fprintf(w, "\n%d entries\n", len(entries))
	return nil
}

// --- dicts subcommand ---

var dictsCmd = &cobra.Command{
	Use:   "dicts",
	Short: "List dictionaries",
	Long: `Dicts lists the stored dictionaries followed by the built-in ones, such as
the numbers dictionary that number matches belong to.`,
	RunE: runDicts,
}

func runDicts(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, d, err := openDictionary(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.GetDictInfos(cmd.Context(), types.DictInfoOptions{PerPage: 1000})
	if err != nil {
		return err
	}
	infos := append(res.Items, d.GetExtraDictInfos()...)

	w := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Fprintf(w, "%-10s  %-10s  %s\n", "ID", "Abbrev", "Name")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, di := range infos {
		fmt.Fprintf(w, "%-10s  %-10s  %s\n", di.ID, di.Abbrev, di.Name)
	}
	return nil
}

func init() {
	entriesCmd.Flags().StringSlice("id", nil, "filter by concept ID")
	entriesCmd.Flags().StringSlice("dict", nil, "filter by dictionary ID")
	entriesCmd.Flags().String("sort", "dictID", "sort order: dictID or id")
	entriesCmd.Flags().Int("page", 1, "result page")
	entriesCmd.Flags().Int("per-page", 0, "results per page (0 = store default)")
	entriesCmd.Flags().StringSlice("z", nil, "keep only these z properties (repeatable)")
	entriesCmd.Flags().Bool("no-z", false, "drop z-objects from results")
	entriesCmd.Flags().Bool("json", false, "output results as JSON")

	dictsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(dictsCmd)
}
