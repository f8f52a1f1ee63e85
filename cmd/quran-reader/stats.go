// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-reader/internal/catalog"
	"github.com/pdiddy/quran-reader/internal/render"
	"github.com/pdiddy/quran-reader/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate statistics over all chapters",
	Long: `Stats fetches the chapter list and prints the chapter and verse totals, the
average verses per chapter, the longest and shortest chapter, and how many
chapters were revealed in Mecca and in Medina. With --group it also lists
the chapters under each revelation place.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Bool("group", false, "also list chapters grouped by revelation place")
	addFormatFlag(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

// statsOutput is the structured form of the stats command.
type statsOutput struct {
	Statistics types.Statistics `json:"statistics" yaml:"statistics"`
	Groups     map[string][]int `json:"groups,omitempty" yaml:"groups,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	group, _ := cmd.Flags().GetBool("group")

	chapters, err := app.client.FetchAllChapters(cmd.Context())
	if err != nil {
		return err
	}
	stats, err := catalog.ComputeStatistics(chapters)
	if err != nil {
		return err
	}

	var groups map[string][]types.Chapter
	if group {
		groups = catalog.GroupByPlace(chapters)
	}

	w := cmd.OutOrStdout()
	if format != render.FormatTable {
		out := statsOutput{Statistics: stats}
		if group {
			out.Groups = make(map[string][]int, len(groups))
			for place, cs := range groups {
				for _, c := range cs {
					out.Groups[place] = append(out.Groups[place], c.Number)
				}
			}
		}
		return render.Structured(w, format, out)
	}

	render.Statistics(w, stats)
	if !group {
		return nil
	}
	places := make([]string, 0, len(groups))
	for place := range groups {
		places = append(places, place)
	}
	sort.Strings(places)
	for _, place := range places {
		label := place
		if label == "" {
			label = "(unknown)"
		}
		fmt.Fprintf(w, "\nRevealed in %s:\n", label)
		render.ChapterTable(w, groups[place])
	}
	return nil
}
