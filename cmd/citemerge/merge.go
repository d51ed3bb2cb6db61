// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/history"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/mediawiki"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/report"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/wikitext"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Merge duplicated refs in a wikitext article",
	Long: `Merge reads wiki source text from a file, from stdin, or from a wiki page
URL, collapses duplicated <ref> payloads into named references, and writes
the rewritten article to stdout or to --output.

A summary of the merge goes to stderr. Runs are recorded in the history
database unless --no-history is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().String("url", "", "fetch the article from a wiki page URL instead of a file")
	mergeCmd.Flags().String("output", "", "write the rewritten article to this file (default stdout)")
	mergeCmd.Flags().String("report", "", "write a YAML merge report to this file")
	mergeCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 5s)")
	mergeCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	mergeCmd.Flags().String("history-db", "", "history database path (default .citemerge/history.db)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	article, source, err := readArticle(cmd, args)
	if err != nil {
		return err
	}

	res, err := wikitext.Merge(article)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(res.Article), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		fmt.Fprint(os.Stdout, res.Article)
	}

	printSummary(os.Stderr, res)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		rep := types.MergeReport{
			Source:      source,
			MergeCount:  res.Merged,
			Duplicates:  res.Duplicates,
			InputBytes:  len(article),
			OutputBytes: len(res.Article),
		}
		if err := report.Write(reportPath, rep); err != nil {
			return err
		}
	}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordRun(cmd, source, article, res)
	}
	return nil
}

// readArticle resolves the input selection: --url wins, then a file
// argument, then stdin ("-" or no argument).
func readArticle(cmd *cobra.Command, args []string) (article, source string, err error) {
	if pageURL, _ := cmd.Flags().GetString("url"); pageURL != "" {
		client := mediawiki.New(fetchConfig(cmd))
		text, err := client.PageWikitext(context.Background(), pageURL)
		if err != nil {
			return "", "", err
		}
		return text, pageURL, nil
	}

	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// fetchConfig builds the fetch settings from flags, falling back to the
// config file and defaults.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		MaxRetries: viper.GetInt("fetch.max_retries"),
	}
}

// printSummary reports the merge outcome the way the interactive flow does.
func printSummary(w io.Writer, res wikitext.Result) {
	if res.Merged == 0 {
		fmt.Fprintln(w, "No duplicated references detected.")
		return
	}
	fmt.Fprintf(w, "Successfully merged %d references. Duplicated ones are:\n", res.Merged)
	for _, p := range res.Duplicates {
		fmt.Fprintf(w, "- '%s'\n", p)
	}
}

// recordRun stores the merge in the history database. Failures are
// reported as warnings; a missing history store never fails the merge.
func recordRun(cmd *cobra.Command, source, article string, res wikitext.Result) {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history.db_path")
	}

	store, err := history.Open(types.HistoryConfig{DBPath: dbPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	rec := types.RunRecord{
		Source:      source,
		MergeCount:  res.Merged,
		Duplicates:  res.Duplicates,
		InputBytes:  len(article),
		OutputBytes: len(res.Article),
	}
	if err := store.Record(context.Background(), &rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run: %v\n", err)
	}
}
