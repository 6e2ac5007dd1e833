// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <text>",
	Short: "Look up concepts whose terms match a string",
	Long: `Match returns the concepts that have a term starting with or containing
the given text, ranked the way an autocomplete list shows them:

  N  the text read as a number
  R  the text is a referring term such as "it"
  F  a fixed term starting with the text
  G  a fixed term containing the text
  S  a dictionary term starting with the text
  T  a dictionary term containing the text

Fixed terms are given with --fixed as conceptID or conceptID=term and are
offered ahead of ordinary dictionary matches on the first page.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig(cmd)

	fixed, _ := cmd.Flags().GetStringArray("fixed")
	dictIDs, _ := cmd.Flags().GetStringSlice("dict")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	idts, err := parseFixed(fixed)
	if err != nil {
		return err
	}
	z := zFromFlags(cmd)

	s, d, err := openDictionary(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(idts) > 0 {
		if _, err := d.LoadFixedTerms(ctx, idts, types.EntryOptions{Z: z}).Wait(ctx); err != nil {
			return fmt.Errorf("loading fixed terms: %w", err)
		}
	}

	res, err := d.GetMatchesForString(ctx, strings.Join(args, " "), types.MatchOptions{
		Filter:  types.MatchFilter{DictID: dictIDs},
		Idts:    idts,
		Z:       z,
		Page:    page,
		PerPage: perPage,
	}).Wait(ctx)
	if err != nil {
		return err
	}

	return formatMatches(cmd.OutOrStdout(), res.Items, jsonOutput)
}

// parseFixed turns "id" and "id=str" flag values into idts.
func parseFixed(values []string) ([]types.Idt, error) {
	idts := make([]types.Idt, 0, len(values))
	for _, v := range values {
		id, str, _ := strings.Cut(v, "=")
		if id == "" {
			return nil, fmt.Errorf("invalid --fixed value %q: missing concept ID", v)
		}
		idts = append(idts, types.Idt{ID: id, Str: str})
	}
	return idts, nil
}

// zFromFlags reads --z and --no-z. Without either, z-objects are kept
// whole.
func zFromFlags(cmd *cobra.Command) types.ZOption {
	if noZ, _ := cmd.Flags().GetBool("no-z"); noZ {
		return types.ZNone
	}
	if !cmd.Flags().Changed("z") {
		return types.ZAll
	}
	keys, _ := cmd.Flags().GetStringSlice("z")
	return types.ZOption(keys)
}

func formatMatches(w io.Writer, matches []types.Match, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-20s  %-10s  %s\n", "Type", "Str", "ID", "Dict", "Descr")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, m := range matches {
		fmt.Fprintf(w, "%-4s  %-30s  %-20s  %-10s  %s\n",
			m.Type, truncate(m.Str, 30), truncate(m.ID, 20), truncate(m.DictID, 10), m.Descr)
	}

	fmt.Fprintf(w, "\n%d matches\n", len(matches))
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}

func init() {
	matchCmd.Flags().StringArray("fixed", nil, "fixed term as conceptID or conceptID=term (repeatable)")
	matchCmd.Flags().StringSlice("dict", nil, "restrict dictionary matches to these dictionary IDs")
	matchCmd.Flags().Int("page", 1, "result page")
	matchCmd.Flags().Int("per-page", 0, "results per page (0 = store default)")
	matchCmd.Flags().StringSlice("z", nil, "keep only these z properties (repeatable)")
	matchCmd.Flags().Bool("no-z", false, "drop z-objects from results")
	matchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(matchCmd)
}
