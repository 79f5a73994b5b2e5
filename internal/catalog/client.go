// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/catwalk-dev/catwalk/internal/testutil"
)

const (
	// DefaultUserAgent identifies the extractor to the catalog server.
	DefaultUserAgent = "Mozilla/5.0 (compatible; SJF-Catalog-Extractor/2.5)"

	// DefaultTimeout bounds each page request.
	DefaultTimeout = 20 * time.Second

	// DefaultDelay is the pause after each successful fetch. Catalog pages
	// are served by a small CMS; the crawl stays polite.
	DefaultDelay = 500 * time.Millisecond

	// maxHTMLResponseBytes is the upper bound on page size (10 MB).
	// Prevents unbounded memory consumption from malformed responses.
	maxHTMLResponseBytes = 10 << 20
)

type (
	// Client fetches catalog pages with a per-request timeout and a
	// politeness delay after each successful fetch.
	Client struct {
		httpClient *http.Client
		userAgent  string
		timeout    time.Duration
		delay      time.Duration
		clock      testutil.Clock
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy
// configurations.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout. Zero disables the timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.timeout = d
	}
}

// WithDelay sets the post-fetch politeness delay. Zero disables the pause.
func WithDelay(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.delay = d
	}
}

// WithClock substitutes the clock driving the politeness delay so tests can
// advance time manually instead of sleeping.
func WithClock(clock testutil.Clock) ClientOption {
	return func(cl *Client) {
		cl.clock = clock
	}
}

// NewClient creates a Client with sensible defaults.
// Defaults: userAgent=DefaultUserAgent, timeout=DefaultTimeout,
// delay=DefaultDelay, httpClient=http.DefaultClient.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		delay:      DefaultDelay,
		clock:      testutil.RealClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches a catalog page and returns its body. Status codes >= 400 are
// errors. After a successful fetch the client pauses for the politeness
// delay; cancelling the context cuts the pause short without discarding the
// already-fetched page.
func (c *Client) Get(ctx context.Context, pageURL string) (string, error) {
	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("fetching %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHTMLResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pageURL, err)
	}

	c.pause(ctx)

	return string(body), nil
}

// pause waits out the politeness delay, ending early when ctx is done.
func (c *Client) pause(ctx context.Context) {
	if c.delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-c.clock.After(c.delay):
	}
}
