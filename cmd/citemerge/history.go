package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/history"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent merge runs",
	Long: `History lists merge runs recorded in the local SQLite database, newest
first, with their source, merge count, and duplicated payloads.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().String("history-db", "", "history database path (default .citemerge/history.db)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history.db_path")
	}

	store, err := history.Open(types.HistoryConfig{
		DBPath: dbPath,
		Limit:  viper.GetInt("history.limit"),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No merge runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%s  %-20s  %d merged",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Source, r.MergeCount)
		if len(r.Duplicates) > 0 {
			fmt.Fprintf(os.Stdout, "  [%s]", strings.Join(truncateAll(r.Duplicates, 40), ", "))
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// truncateAll shortens each payload for single-line display.
func truncateAll(payloads []string, max int) []string {
	out := make([]string, len(payloads))
	for i, p := range payloads {
		if len(p) > max {
			p = p[:max] + "..."
		}
		out[i] = p
	}
	return out
}
