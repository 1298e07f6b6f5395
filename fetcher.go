package dealerfinder

import "context"

// Fetcher retrieves HTML from dealer websites.
// Implementations may use browser automation for JavaScript-heavy sites.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher (e.g. a browser).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
