// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quran-reader/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChapterTable(t *testing.T) {
	chapters := []types.Chapter{
		{Number: 1, Name: "الفاتحة", LatinName: "Al-Fatihah", Meaning: "Pembukaan", VerseCount: 7},
		{Number: 9, Name: "التوبة", LatinName: "At-Taubah-With-A-Long-Name", Meaning: "Pengampunan yang sangat panjang sekali", VerseCount: 129},
	}
	var buf bytes.Buffer
	ChapterTable(&buf, chapters)
	out := buf.String()

	assert.Contains(t, out, "Latin Name")
	assert.Contains(t, out, "Al-Fatihah")
	assert.Contains(t, out, "الفاتحة")
	assert.Contains(t, out, "At-Taubah-With-A-L..")
	assert.NotContains(t, out, "With-A-Long-Name")
	assert.Contains(t, out, "Pengampunan yang sangat..")
	assert.Contains(t, out, "Total: 2 chapters")
}

func TestChapterTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	ChapterTable(&buf, nil)
	assert.Contains(t, buf.String(), "Total: 0 chapters")
}

func detailChapter(verses int) types.Chapter {
	c := types.Chapter{
		Number:          1,
		Name:            "الفاتحة",
		LatinName:       "Al-Fatihah",
		Meaning:         "Pembukaan",
		VerseCount:      verses,
		RevelationPlace: "Mekah",
		Description:     "<p>Surat <i>Al Faatihah</i> (Pembukaan)</p>",
	}
	for i := 1; i <= verses; i++ {
		c.Verses = append(c.Verses, types.Verse{
			Number:      i,
			Arabic:      "آية",
			Latin:       "ayah",
			Translation: "verse text",
		})
	}
	return c
}

func TestChapterDetail_LimitsVerses(t *testing.T) {
	var buf bytes.Buffer
	ChapterDetail(&buf, detailChapter(7), 3)
	out := buf.String()

	assert.Contains(t, out, "Chapter Al-Fatihah (الفاتحة)")
	assert.Contains(t, out, "Revelation place: Mekah")
	assert.Contains(t, out, "Surat Al Faatihah (Pembukaan)")
	assert.NotContains(t, out, "<i>")
	assert.Contains(t, out, "Showing the first 3 verses")
	assert.Contains(t, out, "Verse 3:")
	assert.NotContains(t, out, "Verse 4:")
	assert.Contains(t, out, "4 more verses in this chapter.")
}

func TestChapterDetail_DefaultAndShortChapter(t *testing.T) {
	var buf bytes.Buffer
	ChapterDetail(&buf, detailChapter(3), 0)
	out := buf.String()

	assert.Contains(t, out, "Showing the first 3 verses")
	assert.NotContains(t, out, "more verses")

	buf.Reset()
	ChapterDetail(&buf, detailChapter(9), 0)
	assert.Contains(t, buf.String(), "Verse 5:")
	assert.NotContains(t, buf.String(), "Verse 6:")
}

func TestChapterDetail_LongDescriptionIsClipped(t *testing.T) {
	c := detailChapter(0)
	c.Description = "<p>" + strings.Repeat("kata ", 100) + "</p>"
	var buf bytes.Buffer
	ChapterDetail(&buf, c, 5)
	out := buf.String()

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "Showing the first")
}

func TestStatistics(t *testing.T) {
	var buf bytes.Buffer
	Statistics(&buf, types.Statistics{
		TotalChapters: 3,
		TotalVerses:   493,
		AverageVerses: 493.0 / 3.0,
		Longest:       types.Chapter{LatinName: "Al-Baqarah", VerseCount: 286},
		Shortest:      types.Chapter{LatinName: "Al-Fatihah", VerseCount: 7},
		MeccanCount:   1,
		MedinanCount:  2,
	})
	out := buf.String()

	assert.Contains(t, out, "Total verses        : 493")
	assert.Contains(t, out, "Average per chapter : 164.33")
	assert.Contains(t, out, "Longest chapter     : Al-Baqarah (286 verses)")
	assert.Contains(t, out, "Shortest chapter    : Al-Fatihah (7 verses)")
	assert.Contains(t, out, "Medinan chapters    : 2")
}

func TestStructured(t *testing.T) {
	chapters := []types.Chapter{{Number: 1, LatinName: "Al-Fatihah", VerseCount: 7}}

	var buf bytes.Buffer
	require.NoError(t, Structured(&buf, FormatJSON, chapters))
	var fromJSON []types.Chapter
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, chapters, fromJSON)
	assert.Contains(t, buf.String(), `"namaLatin": "Al-Fatihah"`)

	buf.Reset()
	require.NoError(t, Structured(&buf, FormatYAML, chapters))
	assert.Contains(t, buf.String(), "latin_name: Al-Fatihah")
	var fromYAML []types.Chapter
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, chapters, fromYAML)

	assert.Error(t, Structured(&buf, FormatTable, chapters))
}
