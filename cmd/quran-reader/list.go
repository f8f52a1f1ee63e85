// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-reader/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	Long: `List fetches the chapter list and prints number, Latin name, Arabic name,
meaning, and verse count for each of the 114 chapters.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addFormatFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	chapters, err := app.client.FetchAllChapters(cmd.Context())
	if err != nil {
		return err
	}
	if format != render.FormatTable {
		return render.Structured(cmd.OutOrStdout(), format, chapters)
	}
	render.ChapterTable(cmd.OutOrStdout(), chapters)
	return nil
}

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(render.FormatTable), "output format: table, json, or yaml")
}

func formatFlag(cmd *cobra.Command) (render.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return render.ParseFormat(s)
}
