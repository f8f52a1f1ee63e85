// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/quran-reader/internal/render"
	"github.com/pdiddy/quran-reader/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <number>",
	Short: "Show one chapter with its verses",
	Long: `Show fetches a chapter by number (1-114) and prints its details, a cleaned
description, and the first verses with Arabic text, Latin transliteration,
and translation. Structured formats include every verse.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntP("verses", "n", 0, "number of verses to print in table format (default from config, 5)")
	addFormatFlag(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return &types.Failure{Kind: types.KindValidation, Op: "chapter number", Msg: fmt.Sprintf("%q is not a number", args[0])}
	}
	if err := types.ValidateChapterNumber(number); err != nil {
		return err
	}

	verses, _ := cmd.Flags().GetInt("verses")
	if verses < 0 {
		return &types.Failure{Kind: types.KindValidation, Op: "verse count", Msg: "--verses must not be negative"}
	}
	if verses == 0 {
		verses = app.cfg.Display.Verses
	}

	chapter, err := app.client.FetchChapterDetail(cmd.Context(), number)
	if err != nil {
		return err
	}
	if format != render.FormatTable {
		return render.Structured(cmd.OutOrStdout(), format, chapter)
	}
	render.ChapterDetail(cmd.OutOrStdout(), chapter, verses)
	return nil
}
