// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package equran fetches chapter data from the eQuran.id REST API (v2).
//
// Two endpoints are used: {base}/surat for the chapter list and
// {base}/surat/{n} for one chapter with its verses. Each call issues a
// single GET bounded by the client timeout. There are no retries and no
// caching; every failure comes back as a *types.Failure.
package equran

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/quran-reader/internal/httputil"
	"github.com/pdiddy/quran-reader/pkg/types"
)

// Client queries the eQuran.id API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	Logger    *zap.Logger
}

// NewClient returns a Client configured from cfg. Zero values fall back to
// types.DefaultBaseURL and types.DefaultTimeout. A nil logger is replaced
// with a no-op logger.
func NewClient(cfg types.APIConfig, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	base := cfg.BaseURL
	if base == "" {
		base = types.DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		BaseURL:   strings.TrimRight(base, "/"),
		UserAgent: cfg.UserAgent,
		Logger:    log,
	}
}

// FetchAllChapters returns every chapter from {base}/surat in upstream order.
func (c *Client) FetchAllChapters(ctx context.Context) ([]types.Chapter, error) {
	var chapters []types.Chapter
	if err := c.get(ctx, "fetch chapter list", c.BaseURL+"/surat", &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// FetchChapterDetail returns chapter number with its verses. The number is
// not range-checked here; callers validate it with
// types.ValidateChapterNumber first.
func (c *Client) FetchChapterDetail(ctx context.Context, number int) (types.Chapter, error) {
	var chapter types.Chapter
	op := fmt.Sprintf("fetch chapter %d", number)
	if err := c.get(ctx, op, fmt.Sprintf("%s/surat/%d", c.BaseURL, number), &chapter); err != nil {
		return types.Chapter{}, err
	}
	return chapter, nil
}

func (c *Client) get(ctx context.Context, op, url string, out any) error {
	start := time.Now()
	env, status, err := httputil.Get(ctx, c.HTTP, url, c.UserAgent)
	c.Logger.Debug("api request",
		zap.String("op", op),
		zap.String("url", url),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
	)
	if err == nil {
		err = httputil.Unwrap(env, out)
	}
	if err != nil {
		err = withOp(op, err)
		c.Logger.Debug("api request failed", zap.String("op", op), zap.Error(err))
		return err
	}
	return nil
}

// withOp stamps op onto a Failure that does not carry one yet.
func withOp(op string, err error) error {
	var f *types.Failure
	if errors.As(err, &f) {
		if f.Op == "" {
			f.Op = op
		}
		return f
	}
	return &types.Failure{Kind: types.KindNetwork, Op: op, Err: err}
}
