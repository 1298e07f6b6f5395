// Package http provides the plain-HTTP implementation of
// dealerfinder.Fetcher and the web UI server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. The original
// tool used a 10 second fetch timeout against dealer sites.
const DefaultFetchTimeout = 10 * time.Second

// maxBodyBytes caps the response size read from a dealer site. Pages larger
// than this are truncated; the summarizer budget is far smaller anyway.
const maxBodyBytes = 4 << 20

// userAgent identifies the fetcher. Some dealer platforms reject requests
// with no User-Agent at all.
const userAgent = "Mozilla/5.0 (compatible; dealerfinder/1.0)"

// Ensure Fetcher implements dealerfinder.Fetcher at compile time.
var _ dealerfinder.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves dealer pages over plain HTTP. It does not execute
// JavaScript; use rod.Fetcher for sites that render client-side.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
