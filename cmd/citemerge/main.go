// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citemerge CLI, which merges
// duplicated <ref> citations in Wikipedia-style source text.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "citemerge/0.1"
	defaultHistoryDB = ".citemerge/history.db"
)

// rootCmd is the base command for the citemerge CLI.
var rootCmd = &cobra.Command{
	Use:   "citemerge",
	Short: "Merge duplicated Wikipedia references and citations",
	Long: `citemerge collapses <ref> tags that repeat the same citation content into
a single named definition plus self-closing back-references, as Wikipedia
style guidelines recommend. Unique citations are left untouched.

Use merge for scripted operation, interactive for the guided menu flow,
fetch to retrieve raw wikitext, and history to review past runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citemerge.yaml or ~/.config/citemerge/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citemerge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citemerge"))
		}
	}

	viper.SetEnvPrefix("CITEMERGE")
	viper.AutomaticEnv()

	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_retries", 0)
	viper.SetDefault("history.db_path", defaultHistoryDB)
	viper.SetDefault("history.limit", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
