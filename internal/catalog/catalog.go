// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog searches and summarizes an in-memory chapter list.
// Every function is pure: inputs are never modified and no I/O happens.
package catalog

import (
	"strings"

	"github.com/pdiddy/quran-reader/pkg/types"
)

// ErrEmptyCatalog is returned by ComputeStatistics for an empty list, where
// the longest and shortest chapter are undefined.
var ErrEmptyCatalog = &types.Failure{
	Kind: types.KindValidation,
	Op:   "compute statistics",
	Msg:  "chapter list is empty",
}

// Search returns the chapters whose Latin name or meaning contains keyword,
// ignoring case, in their original order. An empty keyword matches every
// chapter. The result is a new slice.
func Search(chapters []types.Chapter, keyword string) []types.Chapter {
	needle := strings.ToLower(keyword)
	matches := make([]types.Chapter, 0, len(chapters))
	for _, c := range chapters {
		if strings.Contains(strings.ToLower(c.LatinName), needle) ||
			strings.Contains(strings.ToLower(c.Meaning), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// ComputeStatistics summarizes chapters. Longest and Shortest are the first
// chapters in list order with the maximum and minimum verse count.
func ComputeStatistics(chapters []types.Chapter) (types.Statistics, error) {
	if len(chapters) == 0 {
		return types.Statistics{}, ErrEmptyCatalog
	}

	stats := types.Statistics{
		TotalChapters: len(chapters),
		Longest:       chapters[0],
		Shortest:      chapters[0],
	}
	for _, c := range chapters {
		stats.TotalVerses += c.VerseCount
		// Strict comparisons keep the earliest chapter on ties.
		if c.VerseCount > stats.Longest.VerseCount {
			stats.Longest = c
		}
		if c.VerseCount < stats.Shortest.VerseCount {
			stats.Shortest = c
		}
		switch {
		case c.RevealedIn(types.PlaceMecca):
			stats.MeccanCount++
		case c.RevealedIn(types.PlaceMedina):
			stats.MedinanCount++
		}
	}
	stats.AverageVerses = float64(stats.TotalVerses) / float64(stats.TotalChapters)
	return stats, nil
}

// FindByNumber returns the chapter with the given number.
func FindByNumber(chapters []types.Chapter, number int) (types.Chapter, bool) {
	for _, c := range chapters {
		if c.Number == number {
			return c, true
		}
	}
	return types.Chapter{}, false
}

// GroupByPlace buckets chapters by lower-cased, trimmed revelation place,
// preserving list order inside each bucket. Chapters without a place are
// grouped under "".
func GroupByPlace(chapters []types.Chapter) map[string][]types.Chapter {
	groups := make(map[string][]types.Chapter)
	for _, c := range chapters {
		key := strings.ToLower(strings.TrimSpace(c.RevelationPlace))
		groups[key] = append(groups[key], c)
	}
	return groups
}
