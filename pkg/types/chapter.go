// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for quran-reader: the
// chapter and verse records returned by the eQuran.id API, the aggregate
// statistics computed over them, configuration, and the failure type used
// across the fetch, search, and presentation layers.
package types

import "strings"

// Chapter numbers are assigned upstream and form a dense range.
const (
	MinChapter = 1
	MaxChapter = 114
)

// Revelation places as spelled by the upstream dataset.
const (
	PlaceMecca  = "Mekah"
	PlaceMedina = "Madinah"
)

// Chapter (surat) is one of the 114 numbered divisions of the Quran.
// JSON tags carry the upstream field names verbatim; missing fields
// decode to their zero value.
type Chapter struct {
	// Number is the chapter number, 1 through 114.
	Number int `json:"nomor" yaml:"number"`

	// Name is the chapter name in Arabic script.
	Name string `json:"nama" yaml:"name"`

	// LatinName is the transliterated chapter name (e.g. "Al-Fatihah").
	LatinName string `json:"namaLatin" yaml:"latin_name"`

	// VerseCount is the number of verses in the chapter.
	VerseCount int `json:"jumlahAyat" yaml:"verse_count"`

	// RevelationPlace is either PlaceMecca or PlaceMedina.
	RevelationPlace string `json:"tempatTurun" yaml:"revelation_place"`

	// Meaning is the translated meaning of the chapter name.
	Meaning string `json:"arti" yaml:"meaning"`

	// Description is a long-form introduction. It may contain simple HTML.
	Description string `json:"deskripsi" yaml:"description,omitempty"`

	// Verses is populated only by chapter detail responses.
	Verses []Verse `json:"ayat,omitempty" yaml:"verses,omitempty"`
}

// RevealedIn reports whether the chapter's revelation place equals place,
// ignoring case.
func (c Chapter) RevealedIn(place string) bool {
	return strings.EqualFold(strings.TrimSpace(c.RevelationPlace), place)
}

// Verse (ayat) is one numbered unit within a chapter.
type Verse struct {
	// Number is the 1-based verse number within its chapter.
	Number int `json:"nomorAyat" yaml:"number"`

	// Arabic is the verse text in Arabic script.
	Arabic string `json:"teksArab" yaml:"arabic"`

	// Latin is the Latin transliteration.
	Latin string `json:"teksLatin" yaml:"latin"`

	// Translation is the Indonesian translation.
	Translation string `json:"teksIndonesia" yaml:"translation"`
}

// Statistics summarizes a chapter list.
type Statistics struct {
	TotalChapters int     `json:"total_chapters" yaml:"total_chapters"`
	TotalVerses   int     `json:"total_verses" yaml:"total_verses"`
	AverageVerses float64 `json:"average_verses" yaml:"average_verses"`

	// Longest and Shortest are the first chapters in list order holding
	// the maximum and minimum verse count.
	Longest  Chapter `json:"longest" yaml:"longest"`
	Shortest Chapter `json:"shortest" yaml:"shortest"`

	MeccanCount  int `json:"meccan_count" yaml:"meccan_count"`
	MedinanCount int `json:"medinan_count" yaml:"medinan_count"`
}
