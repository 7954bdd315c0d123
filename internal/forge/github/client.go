// Package github is the GitHub REST v3 client backing the analytics API
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "gitstats/internal/platform/errors"
	"gitstats/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 15 * time.Second
	defaultUA      = "gitstats-api"

	// Large commit listings blow past 1 MiB easily
	defaultMaxBody = int64(16 << 20)

	// PageSize is the per_page value used on every list endpoint
	PageSize = 100
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// MaxBodyBytes caps the response body read per request
	MaxBodyBytes int64
}

// Client is a stateless per-request GitHub REST client.
// The bearer is passed per call, never stored
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBody
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("github"),
	}
}

// GetJSON issues an authenticated GET against path and decodes the body into out.
// Query may be nil. 401 and 403 from upstream map to a re-login error,
// anything else non-2xx maps to an upstream failure
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, bearer string, out any) error {
	u := c.opts.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	lat := time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			return perr.Wrapf(ctx.Err(), perr.ErrorCodeCanceled, "github request canceled")
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "github do failed")
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	rem, reset := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Msg("github http response")

	if err := statusError(resp); err != nil {
		return err
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return perr.Wrapf(ctx.Err(), perr.ErrorCodeCanceled, "github request canceled")
		}
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "github read body failed")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "github decode failed for %s", path)
	}
	return nil
}

// statusError maps a non-2xx response to the engine error taxonomy
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return perr.Unauthorizedf("Please login again")
	case resp.StatusCode == http.StatusTooManyRequests:
		return perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited")
	default:
		// small diagnostic tail only
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Upstreamf("github responded %d: %s", resp.StatusCode, string(tail))
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
