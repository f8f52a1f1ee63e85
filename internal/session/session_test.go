// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quran-reader/pkg/types"
)

// --- stub fetcher ---

type stubFetcher struct {
	chapters    []types.Chapter
	listErr     error
	detailErr   error
	listCalls   int
	detailCalls []int
}

func (f *stubFetcher) FetchAllChapters(_ context.Context) ([]types.Chapter, error) {
	f.listCalls++
	return f.chapters, f.listErr
}

func (f *stubFetcher) FetchChapterDetail(_ context.Context, number int) (types.Chapter, error) {
	f.detailCalls = append(f.detailCalls, number)
	if f.detailErr != nil {
		return types.Chapter{}, f.detailErr
	}
	for _, c := range f.chapters {
		if c.Number == number {
			for i := 1; i <= c.VerseCount; i++ {
				c.Verses = append(c.Verses, types.Verse{Number: i, Arabic: "آية", Latin: "ayah", Translation: fmt.Sprintf("text %d", i)})
			}
			return c, nil
		}
	}
	return types.Chapter{}, &types.Failure{Kind: types.KindUpstream, Status: 404, Msg: "API returned HTTP 404 Not Found"}
}

func newStub() *stubFetcher {
	return &stubFetcher{chapters: []types.Chapter{
		{Number: 1, Name: "الفاتحة", LatinName: "Al-Fatihah", Meaning: "The Opening", VerseCount: 7, RevelationPlace: "Mekah"},
		{Number: 2, Name: "البقرة", LatinName: "Al-Baqarah", Meaning: "The Cow", VerseCount: 286, RevelationPlace: "Madinah"},
		{Number: 3, Name: "آل عمران", LatinName: "Ali 'Imran", Meaning: "The Family of Imran", VerseCount: 200, RevelationPlace: "Madinah"},
	}}
}

func run(t *testing.T, f *stubFetcher, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	s := New(f, strings.NewReader(input), &out, types.DisplayConfig{Verses: 5}, nil)
	err := s.Run(context.Background())
	return out.String(), err
}

// --- loading ---

func TestRun_LoadsOnceAndExits(t *testing.T) {
	f := newStub()
	out, err := run(t, f, "5\n")
	require.NoError(t, err)

	assert.Equal(t, 1, f.listCalls)
	assert.Contains(t, out, "QURAN CHAPTER READER")
	assert.Contains(t, out, "Loaded 3 chapters.")
	assert.Contains(t, out, "Thank you for using quran-reader.")
}

func TestRun_LoadFailure(t *testing.T) {
	f := &stubFetcher{listErr: &types.Failure{Kind: types.KindNetwork, Op: "fetch chapter list", Msg: "request timed out"}}
	_, err := run(t, f, "1\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNetwork)
	assert.Contains(t, err.Error(), "loading chapters")
}

func TestRun_EmptyList(t *testing.T) {
	_, err := run(t, &stubFetcher{}, "1\n")
	assert.ErrorIs(t, err, ErrNoChapters)
}

func TestLoad_KeepsChapters(t *testing.T) {
	f := newStub()
	s := New(f, strings.NewReader("5\n"), io.Discard, types.DisplayConfig{}, nil)
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.chapters, 3)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 1, f.listCalls, "Run must reuse chapters loaded earlier")
}

// --- menu actions ---

func TestRun_ListAll(t *testing.T) {
	out, err := run(t, newStub(), "1\n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "CHAPTERS OF THE QURAN")
	assert.Contains(t, out, "Al-Baqarah")
	assert.Contains(t, out, "Total: 3 chapters")
	assert.Contains(t, out, "Press Enter to return to the menu")
}

func TestRun_Search(t *testing.T) {
	out, err := run(t, newStub(), "2\nCOW\n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 chapters:")
	assert.Contains(t, out, "Al-Baqarah")
	assert.NotContains(t, out, "Ali 'Imran")
}

func TestRun_SearchNoMatch(t *testing.T) {
	out, err := run(t, newStub(), "2\nzzz\n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, `No chapter matches "zzz".`)
}

func TestRun_DetailWithVerseCount(t *testing.T) {
	f := newStub()
	out, err := run(t, f, "3\n1\n2\n\n5\n")
	require.NoError(t, err)

	assert.Equal(t, []int{1}, f.detailCalls)
	assert.Contains(t, out, "Fetching chapter 1...")
	assert.Contains(t, out, "Chapter Al-Fatihah (الفاتحة)")
	assert.Contains(t, out, "Verse 2:")
	assert.NotContains(t, out, "Verse 3:")
	assert.Contains(t, out, "5 more verses in this chapter.")
}

func TestRun_DetailDefaultVerseCount(t *testing.T) {
	out, err := run(t, newStub(), "3\n1\n\n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Verse 5:")
	assert.NotContains(t, out, "Verse 6:")
}

func TestRun_DetailIsFetchedEveryTime(t *testing.T) {
	f := newStub()
	_, err := run(t, f, "3\n2\n1\n\n3\n2\n1\n\n5\n")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, f.detailCalls)
}

func TestRun_DetailInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not a number", "3\nabc\n\n5\n", "input must be a number"},
		{"below range", "3\n0\n\n5\n", "must be between 1 and 114, got 0"},
		{"above range", "3\n115\n\n5\n", "must be between 1 and 114, got 115"},
		{"bad verse count", "3\n1\nmany\n\n5\n", "input must be a positive number"},
		{"zero verse count", "3\n1\n0\n\n5\n", "input must be a positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, newStub(), tt.input)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Showing the first")
			assert.Contains(t, out, "Thank you for using quran-reader.")
		})
	}
}

func TestRun_DetailFetchFailureReturnsToMenu(t *testing.T) {
	f := newStub()
	f.detailErr = &types.Failure{Kind: types.KindUpstream, Op: "fetch chapter 2", Status: 500, Msg: "API returned HTTP 500 Internal Server Error"}
	out, err := run(t, f, "3\n2\n\n4\n\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: fetch chapter 2: API returned HTTP 500")
	assert.Contains(t, out, "QURAN STATISTICS")
}

func TestRun_DetailFetchFailureShowsListSummary(t *testing.T) {
	f := newStub()
	f.detailErr = &types.Failure{Kind: types.KindNetwork, Op: "fetch chapter 2", Msg: "request timed out"}
	out, err := run(t, f, "3\n2\n\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Error: fetch chapter 2: request timed out")
	assert.Contains(t, out, "showing the chapter summary from the loaded list")
	assert.Contains(t, out, "Chapter Al-Baqarah (البقرة)")
	assert.Contains(t, out, "Verses          : 286")
	assert.NotContains(t, out, "Showing the first")
}

func TestRun_DetailUnknownChapterHasNoSummary(t *testing.T) {
	// Chapter 50 passes range validation but is not in the stub list.
	out, err := run(t, newStub(), "3\n50\n\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "API returned HTTP 404")
	assert.NotContains(t, out, "chapter summary")
}

func TestRun_SearchKeywordIsTrimmedAtPrompt(t *testing.T) {
	out, err := run(t, newStub(), "2\n   cow  \n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 chapters:")
	assert.Contains(t, out, "Al-Baqarah")
}

func TestRun_Statistics(t *testing.T) {
	out, err := run(t, newStub(), "4\n\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Total verses        : 493")
	assert.Contains(t, out, "Average per chapter : 164.33")
	assert.Contains(t, out, "Longest chapter     : Al-Baqarah (286 verses)")
	assert.Contains(t, out, "Shortest chapter    : Al-Fatihah (7 verses)")
	assert.Contains(t, out, "Meccan chapters     : 1")
	assert.Contains(t, out, "Medinan chapters    : 2")
}

func TestRun_InvalidChoice(t *testing.T) {
	out, err := run(t, newStub(), "9\n\n5\n")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Invalid choice."))
}

// --- termination ---

func TestRun_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1\n", "2\n", "3\n", "3\n1\n"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			out, err := run(t, newStub(), input)
			require.NoError(t, err)
			assert.Contains(t, out, "Thank you for using quran-reader.")
		})
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(newStub(), pr, io.Discard, types.DisplayConfig{}, nil)
	err := s.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
