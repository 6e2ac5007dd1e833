// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vsm-dictionary CLI. It loads
// dictionaries into a local SQLite store and runs string matching against
// them, including fixed terms, number matches and referring terms.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vsmjs/vsm-dictionary/internal/logger"
	"github.com/vsmjs/vsm-dictionary/internal/store"
	"github.com/vsmjs/vsm-dictionary/pkg/dictionary"
	"github.com/vsmjs/vsm-dictionary/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the vsm-dictionary CLI.
var rootCmd = &cobra.Command{
	Use:   "vsm-dictionary",
	Short: "Concept dictionary with fixed-term, number and referring-term matching",
	Long: `vsm-dictionary keeps dictionaries of concepts and their terms in a local
SQLite database and looks up concepts by string.

Use load to import a YAML seed file, match to look up a string, and entries
or dicts to browse what is stored.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vsm-dictionary.yaml or ~/.config/vsm-dictionary/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "shorthand for --log-level debug")

	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("store.path", "vsm-dictionary.db")
	viper.SetDefault("store.per_page", 20)
	viper.SetDefault("log_level", "warn")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vsm-dictionary")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vsm-dictionary"))
		}
	}

	viper.SetEnvPrefix("VSM_DICTIONARY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the settings from config file, environment and
// flags.
func loadConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Dictionary: types.DictionaryConfig{
			NumberMatch: types.NumberMatchConfig{
				Disabled:        viper.GetBool("dictionary.number_match.disabled"),
				DictID:          viper.GetString("dictionary.number_match.dict_id"),
				ConceptIDPrefix: viper.GetString("dictionary.number_match.concept_id_prefix"),
			},
			Descrs: types.MatchDescrs{
				Number:  viper.GetString("dictionary.descrs.number"),
				RefTerm: viper.GetString("dictionary.descrs.ref_term"),
			},
		},
		Store: types.StoreConfig{
			Path:    viper.GetString("store.path"),
			PerPage: viper.GetInt("store.per_page"),
		},
		LogLevel: viper.GetString("log_level"),
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func newLogger(cfg types.Config) *log.Logger {
	return logger.New("vsm-dictionary", logger.ParseLevel(cfg.LogLevel))
}

// openDictionary opens the store named in cfg and wraps it in a
// dictionary. The caller closes the returned store.
func openDictionary(cfg types.Config) (*store.Store, *dictionary.Dictionary, error) {
	s, err := store.Open(cfg.Store)
	if err != nil {
		return nil, nil, err
	}
	l := newLogger(cfg)
	l.Debug("opened store", "path", cfg.Store.Path)
	return s, dictionary.New(s, cfg.Dictionary, dictionary.WithLogger(l)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
