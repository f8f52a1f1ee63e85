// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-reader/internal/catalog"
	"github.com/pdiddy/quran-reader/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword...>",
	Short: "Search chapters by Latin name or meaning",
	Long: `Search fetches the chapter list and prints the chapters whose Latin name or
meaning contains the keyword, ignoring case. Multiple arguments are joined
with spaces into one keyword.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	addFormatFlag(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	keyword := strings.Join(args, " ")

	chapters, err := app.client.FetchAllChapters(cmd.Context())
	if err != nil {
		return err
	}
	matches := catalog.Search(chapters, keyword)

	w := cmd.OutOrStdout()
	if format != render.FormatTable {
		return render.Structured(w, format, matches)
	}
	if len(matches) == 0 {
		fmt.Fprintf(w, "No chapter matches %q.\n", keyword)
		return nil
	}
	fmt.Fprintf(w, "Found %d chapters:\n", len(matches))
	render.ChapterTable(w, matches)
	return nil
}
