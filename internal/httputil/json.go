// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the JSON GET helper used by the API client. It
// translates every transport, status, and decoding problem into a
// *types.Failure so callers deal with exactly one error shape.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/pdiddy/quran-reader/pkg/types"
)

// maxErrorBody caps how much of a non-2xx body is drained before closing.
const maxErrorBody = 64 << 10

// Envelope is the wrapper the eQuran.id API puts around every payload.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Get issues a GET for rawURL with the given User-Agent and decodes the
// response envelope. It returns the HTTP status code alongside the envelope
// so callers can log it; the status is 0 when no response arrived.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string) (Envelope, int, error) {
	var env Envelope

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return env, 0, &types.Failure{Kind: types.KindNetwork, Msg: "creating request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return env, 0, networkFailure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return env, resp.StatusCode, &types.Failure{
			Kind:   types.KindUpstream,
			Status: resp.StatusCode,
			Msg:    fmt.Sprintf("API returned HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if isTimeout(err) {
			return env, resp.StatusCode, networkFailure(err)
		}
		return env, resp.StatusCode, &types.Failure{Kind: types.KindParse, Msg: "parsing response", Err: err}
	}
	return env, resp.StatusCode, nil
}

// Unwrap decodes the envelope's data field into out. An absent or null data
// field is a parse failure.
func Unwrap(env Envelope, out any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &types.Failure{Kind: types.KindParse, Msg: "response has no data field"}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &types.Failure{Kind: types.KindParse, Msg: "parsing data field", Err: err}
	}
	return nil
}

func networkFailure(err error) *types.Failure {
	if isTimeout(err) {
		return &types.Failure{Kind: types.KindNetwork, Msg: "request timed out", Err: err}
	}
	return &types.Failure{Kind: types.KindNetwork, Msg: "request failed", Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
