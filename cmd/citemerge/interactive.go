// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/mediawiki"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/menu"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/wikitext"
)

const bannerWidth = 40

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the guided menu flow",
	Long: `Interactive walks through input and output selection with numbered menus:
fetch a page from a wiki, load a file, or paste the article directly, then
save the result to a file or display it. An out-of-range selection aborts.`,
	RunE: runInteractive,
}

func init() {
	interactiveCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 5s)")

	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(os.Stdin)
	out := os.Stdout
	rule := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(out, "%s\n%s\n%s\n", rule, center("Wikipedia Duplicated Citations Merger", bannerWidth), rule)

	inChoice, err := menu.Select(in, out, "\nHow do you wish to provide the input?", 3, []string{
		"Fetch from wikipedia",
		"Load from file ...",
		"Paste it here directly.",
	})
	if err != nil {
		return err
	}

	var srcArg string
	switch inChoice {
	case 1:
		if srcArg, err = menu.ReadLine(in, out, "URL of the wiki page: "); err != nil {
			return err
		}
	case 2:
		if srcArg, err = menu.ReadLine(in, out, "Please provide the file name to load: "); err != nil {
			return err
		}
	}

	outChoice, err := menu.Select(in, out, "\nHow do you wish to get the result?", 3, []string{
		"Save the result to 'result.txt'.",
		"Save the result to ...",
		"Display it here directly.",
	})
	if err != nil {
		return err
	}

	var outFile string
	switch outChoice {
	case 1:
		outFile = "result.txt"
	case 2:
		if outFile, err = menu.ReadLine(in, out, "Please provide the file name to save: "); err != nil {
			return err
		}
	}

	var article, source string
	switch inChoice {
	case 1:
		client := mediawiki.New(fetchConfig(cmd))
		if article, err = client.PageWikitext(context.Background(), srcArg); err != nil {
			return err
		}
		source = srcArg
	case 2:
		data, err := os.ReadFile(srcArg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", srcArg, err)
		}
		article, source = string(data), srcArg
	default:
		fmt.Fprintf(out, "\nPaste your wiki article source code here:\n")
		fmt.Fprintf(out, "Press CTRL + D (or CTRL + Z plus Enter) when completed.\n%s\n", rule)
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		article, source = string(data), "stdin"
	}

	res, err := wikitext.Merge(article)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(res.Article), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outFile, err)
		}
	} else {
		fmt.Fprintf(out, "\n\nHere's the result:\n%s\n", rule)
		fmt.Fprintln(out, res.Article)
	}

	fmt.Fprintln(out, rule)
	printSummary(out, res)
	recordRun(cmd, source, article, res)
	return nil
}

// center pads s with spaces to width, extra space going to the right.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
