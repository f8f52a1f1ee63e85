// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs the interactive menu. A Session owns the chapter
// list loaded at startup and hands it to the catalog functions; chapter
// detail is fetched on each request and dropped once it has been shown.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/quran-reader/internal/catalog"
	"github.com/pdiddy/quran-reader/internal/render"
	"github.com/pdiddy/quran-reader/pkg/types"
)

// Fetcher loads chapter data. *equran.Client implements it.
type Fetcher interface {
	FetchAllChapters(ctx context.Context) ([]types.Chapter, error)
	FetchChapterDetail(ctx context.Context, number int) (types.Chapter, error)
}

// ErrNoChapters is returned by Load when the API answers with an empty list.
var ErrNoChapters = errors.New("API returned no chapters")

// Menu choices.
const (
	choiceList   = "1"
	choiceSearch = "2"
	choiceDetail = "3"
	choiceStats  = "4"
	choiceExit   = "5"
)

// Session is one interactive run.
type Session struct {
	fetcher    Fetcher
	in         io.Reader
	out        io.Writer
	verseLimit int
	log        *zap.Logger

	chapters []types.Chapter
	lines    <-chan string
	done     chan struct{}
}

// New returns a Session reading from in and writing to out. A nil logger is
// replaced with a no-op logger.
func New(f Fetcher, in io.Reader, out io.Writer, display types.DisplayConfig, log *zap.Logger) *Session {
	limit := display.Verses
	if limit <= 0 {
		limit = types.DefaultVerseLimit
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{fetcher: f, in: in, out: out, verseLimit: limit, log: log}
}

// Load fetches the chapter list once. It fails when the fetch fails or the
// list is empty.
func (s *Session) Load(ctx context.Context) error {
	fmt.Fprintln(s.out, "Fetching chapter list from the API...")
	chapters, err := s.fetcher.FetchAllChapters(ctx)
	if err != nil {
		return fmt.Errorf("loading chapters: %w", err)
	}
	if len(chapters) == 0 {
		return ErrNoChapters
	}
	s.chapters = chapters
	s.log.Debug("chapters loaded", zap.Int("count", len(chapters)))
	fmt.Fprintf(s.out, "Loaded %d chapters.\n", len(chapters))
	return nil
}

// Run prints the header, loads the chapter list if Load has not been
// called, and serves the menu until the user exits, input ends, or ctx is
// cancelled. Fetch and input errors inside the loop are reported to the
// user and the menu continues; only a failed initial load or a cancelled
// ctx is returned.
func (s *Session) Run(ctx context.Context) error {
	s.done = make(chan struct{})
	defer close(s.done)
	s.lines = s.readLines()

	header(s.out)
	if s.chapters == nil {
		if err := s.Load(ctx); err != nil {
			return err
		}
	}

	for {
		menu(s.out)
		choice, ok, err := s.prompt(ctx, "Choose an option (1-5): ")
		if err != nil {
			return err
		}
		if !ok {
			goodbye(s.out)
			return nil
		}

		switch choice {
		case choiceList:
			fmt.Fprintln(s.out, "\nCHAPTERS OF THE QURAN")
			render.ChapterTable(s.out, s.chapters)
		case choiceSearch:
			ok, err = s.search(ctx)
		case choiceDetail:
			ok, err = s.detail(ctx)
		case choiceStats:
			s.stats()
		case choiceExit:
			goodbye(s.out)
			return nil
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Please choose 1-5.")
			continue
		}
		if err != nil {
			return err
		}
		if !ok {
			goodbye(s.out)
			return nil
		}

		if _, ok, err = s.prompt(ctx, "\nPress Enter to return to the menu..."); err != nil {
			return err
		} else if !ok {
			goodbye(s.out)
			return nil
		}
	}
}

func (s *Session) search(ctx context.Context) (bool, error) {
	keyword, ok, err := s.prompt(ctx, "\nEnter a chapter name to search for: ")
	if !ok || err != nil {
		return ok, err
	}
	matches := catalog.Search(s.chapters, keyword)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "\nNo chapter matches %q.\n", keyword)
		return true, nil
	}
	fmt.Fprintf(s.out, "\nFound %d chapters:\n", len(matches))
	render.ChapterTable(s.out, matches)
	return true, nil
}

func (s *Session) detail(ctx context.Context) (bool, error) {
	raw, ok, err := s.prompt(ctx, fmt.Sprintf("\nEnter a chapter number (%d-%d): ", types.MinChapter, types.MaxChapter))
	if !ok || err != nil {
		return ok, err
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		s.reportError(&types.Failure{Kind: types.KindValidation, Op: "chapter number", Msg: "input must be a number"})
		return true, nil
	}
	if err := types.ValidateChapterNumber(number); err != nil {
		s.reportError(err)
		return true, nil
	}

	fmt.Fprintf(s.out, "Fetching chapter %d...\n", number)
	chapter, err := s.fetcher.FetchChapterDetail(ctx, number)
	if err != nil {
		s.reportError(err)
		if summary, ok := catalog.FindByNumber(s.chapters, number); ok {
			fmt.Fprintln(s.out, "\nVerses are unavailable; showing the chapter summary from the loaded list.")
			render.ChapterDetail(s.out, summary, s.verseLimit)
		}
		return true, nil
	}

	raw, ok, err = s.prompt(ctx, fmt.Sprintf("How many verses to show? (default %d): ", s.verseLimit))
	if !ok || err != nil {
		return ok, err
	}
	limit := s.verseLimit
	if raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n <= 0 {
			s.reportError(&types.Failure{Kind: types.KindValidation, Op: "verse count", Msg: "input must be a positive number"})
			return true, nil
		}
		limit = n
	}

	fmt.Fprintln(s.out)
	render.ChapterDetail(s.out, chapter, limit)
	return true, nil
}

func (s *Session) stats() {
	st, err := catalog.ComputeStatistics(s.chapters)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "\nQURAN STATISTICS")
	render.Statistics(s.out, st)
}

func (s *Session) reportError(err error) {
	s.log.Debug("menu action failed", zap.String("kind", string(types.KindOf(err))), zap.Error(err))
	fmt.Fprintf(s.out, "\nError: %v\n", err)
}

// prompt writes msg and waits for one trimmed line. ok is false at end of
// input; err is non-nil only when ctx is cancelled.
func (s *Session) prompt(ctx context.Context, msg string) (string, bool, error) {
	fmt.Fprint(s.out, msg)
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-s.lines:
		return strings.TrimSpace(line), ok, nil
	}
}

// readLines scans s.in on its own goroutine so a blocked terminal read does
// not keep Run from observing ctx cancellation.
func (s *Session) readLines() <-chan string {
	ch := make(chan string)
	done := s.done
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-done:
				return
			}
		}
	}()
	return ch
}

func header(w io.Writer) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(w, "                 QURAN CHAPTER READER")
	fmt.Fprintln(w, "                Data from eQuran.id API")
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

func menu(w io.Writer) {
	fmt.Fprintln(w, "\nMENU:")
	fmt.Fprintln(w, "1. List all chapters")
	fmt.Fprintln(w, "2. Search chapters by name")
	fmt.Fprintln(w, "3. Show chapter detail (with verses)")
	fmt.Fprintln(w, "4. Show statistics")
	fmt.Fprintln(w, "5. Exit")
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

func goodbye(w io.Writer) {
	fmt.Fprintln(w, "\nThank you for using quran-reader.")
	fmt.Fprintln(w, "Jazakumullahu khairan")
}
