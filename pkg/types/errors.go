// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an operation did not produce a value.
type FailureKind string

const (
	// KindNetwork covers timeouts and connection errors.
	KindNetwork FailureKind = "network"
	// KindUpstream is a non-2xx response from the API.
	KindUpstream FailureKind = "upstream"
	// KindParse is a malformed body or a missing data field.
	KindParse FailureKind = "parse"
	// KindValidation is caller input outside the accepted range.
	KindValidation FailureKind = "validation"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrNetwork    = &Failure{Kind: KindNetwork}
	ErrUpstream   = &Failure{Kind: KindUpstream}
	ErrParse      = &Failure{Kind: KindParse}
	ErrValidation = &Failure{Kind: KindValidation}
)

// Failure is the error returned by every fetch and validation path. Op names
// the operation (e.g. "fetch chapter 2"), Status holds the HTTP status for
// upstream failures, and Err is the underlying cause when there is one.
type Failure struct {
	Kind   FailureKind
	Op     string
	Status int
	Msg    string
	Err    error
}

func (f *Failure) Error() string {
	msg := f.Msg
	switch {
	case msg == "" && f.Err != nil:
		msg = f.Err.Error()
	case f.Err != nil:
		msg = msg + ": " + f.Err.Error()
	}
	if msg == "" {
		msg = string(f.Kind) + " failure"
	}
	if f.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", f.Op, msg)
}

func (f *Failure) Unwrap() error { return f.Err }

// Is matches any Failure of the same kind, so errors.Is(err, ErrUpstream)
// holds for every upstream failure.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Kind == f.Kind && t.Op == "" && t.Status == 0 && t.Msg == "" && t.Err == nil
}

// KindOf returns the kind of the first Failure in err's chain, or "" when
// err carries none.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// ValidateChapterNumber rejects numbers outside MinChapter..MaxChapter.
func ValidateChapterNumber(n int) error {
	if n < MinChapter || n > MaxChapter {
		return &Failure{
			Kind: KindValidation,
			Op:   "chapter number",
			Msg:  fmt.Sprintf("must be between %d and %d, got %d", MinChapter, MaxChapter, n),
		}
	}
	return nil
}
