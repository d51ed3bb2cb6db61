package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/mediawiki"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch raw wikitext for a wiki page",
	Long: `Fetch resolves a wiki page URL (any MediaWiki site with a /wiki/ path,
e.g. https://en.wikipedia.org/wiki/Go_(programming_language)) to its raw
wikitext via the action API and prints it to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 5s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := mediawiki.New(fetchConfig(cmd))
	text, err := client.PageWikitext(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, text)
	return nil
}
