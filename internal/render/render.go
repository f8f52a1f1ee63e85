// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes chapters, chapter detail, and statistics as plain
// text tables or as JSON/YAML documents.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quran-reader/pkg/types"
)

// Format selects the output encoding for non-interactive commands.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", &types.Failure{
			Kind: types.KindValidation,
			Op:   "output format",
			Msg:  fmt.Sprintf("unknown format %q (want table, json, or yaml)", s),
		}
	}
}

const (
	tableWidth       = 90
	descriptionLimit = 300
)

// ChapterTable writes chapters as a fixed-width table followed by a count.
func ChapterTable(w io.Writer, chapters []types.Chapter) {
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	fmt.Fprintf(w, "%-5s %-20s %-20s %-25s %-5s\n", "No", "Latin Name", "Arabic Name", "Meaning", "Verses")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, c := range chapters {
		fmt.Fprintf(w, "%-5d %-20s %-20s %-25s %-5d\n",
			c.Number, truncate(c.LatinName, 20), c.Name, truncate(c.Meaning, 25), c.VerseCount)
	}

	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	fmt.Fprintf(w, "Total: %d chapters\n", len(chapters))
}

// ChapterDetail writes a chapter header, its cleaned description, and the
// first verseLimit verses. A non-positive limit uses types.DefaultVerseLimit.
func ChapterDetail(w io.Writer, c types.Chapter, verseLimit int) {
	if verseLimit <= 0 {
		verseLimit = types.DefaultVerseLimit
	}

	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "Chapter %s (%s)\n", c.LatinName, c.Name)
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "Meaning         : %s\n", c.Meaning)
	fmt.Fprintf(w, "Revelation place: %s\n", c.RevelationPlace)
	fmt.Fprintf(w, "Verses          : %d\n", c.VerseCount)
	fmt.Fprintf(w, "Number          : %d\n", c.Number)
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	if desc := CleanDescription(c.Description); desc != "" {
		fmt.Fprintf(w, "\nDescription:\n%s\n", clip(desc, descriptionLimit))
	}

	if len(c.Verses) == 0 {
		fmt.Fprintln(w)
		return
	}

	shown := min(verseLimit, len(c.Verses))
	fmt.Fprintf(w, "\nShowing the first %d verses:\n", shown)
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for i, v := range c.Verses[:shown] {
		n := v.Number
		if n == 0 {
			n = i + 1
		}
		fmt.Fprintf(w, "\nVerse %d:\n", n)
		fmt.Fprintf(w, "  Arabic      : %s\n", v.Arabic)
		fmt.Fprintf(w, "  Latin       : %s\n", v.Latin)
		fmt.Fprintf(w, "  Translation : %s\n", v.Translation)
	}
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	if rest := len(c.Verses) - shown; rest > 0 {
		fmt.Fprintf(w, "%d more verses in this chapter.\n", rest)
	}
	fmt.Fprintln(w)
}

// Statistics writes the aggregate summary of a chapter list.
func Statistics(w io.Writer, s types.Statistics) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total chapters      : %d\n", s.TotalChapters)
	fmt.Fprintf(w, "Total verses        : %d\n", s.TotalVerses)
	fmt.Fprintf(w, "Average per chapter : %.2f\n", s.AverageVerses)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Longest chapter     : %s (%d verses)\n", s.Longest.LatinName, s.Longest.VerseCount)
	fmt.Fprintf(w, "Shortest chapter    : %s (%d verses)\n", s.Shortest.LatinName, s.Shortest.VerseCount)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Meccan chapters     : %d\n", s.MeccanCount)
	fmt.Fprintf(w, "Medinan chapters    : %d\n", s.MedinanCount)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v as JSON or YAML according to f. FormatTable is not
// structured and returns an error.
func Structured(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	default:
		return fmt.Errorf("format %q is not a structured format", f)
	}
}

// truncate shortens s to max runes, ending in "..", when it is longer.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-2]) + ".."
}

// clip cuts s to limit runes and appends an ellipsis when it did.
func clip(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimRightFunc(string([]rune(s)[:limit]), isSpace) + "..."
}
