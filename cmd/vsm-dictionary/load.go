// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vsmjs/vsm-dictionary/internal/seed"
	"github.com/vsmjs/vsm-dictionary/internal/store"
)

// --- load subcommand ---

var loadCmd = &cobra.Command{
	Use:   "load <seed.yaml>",
	Short: "Add dictionaries, entries and referring terms from a YAML seed file",
	Long: `Load reads a seed file holding dictInfos, entries and refTerms and adds
them to the database, in that order. Entry terms are cleaned first: empty
and repeated term strings are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	doc, err := seed.Load(args[0])
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = seed.Apply(cmd.Context(), s, doc, cmd.OutOrStdout())
	return err
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the whole database as a YAML seed file",
	Long: `Export writes every dictionary, entry and referring term to a seed file
that load can read back. Without a file argument it writes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	s, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 0 {
		return seed.Export(cmd.Context(), s, cmd.OutOrStdout())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := seed.Export(cmd.Context(), s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(exportCmd)
}
