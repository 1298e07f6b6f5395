// Package googlemaps implements dealerfinder.Geocoder and
// dealerfinder.PlaceSearcher on top of the Google Maps Web Services API.
package googlemaps

import (
	"net/http"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

// defaultDetailsRPS limits place-details calls, which the places API
// rate-limits much more aggressively than searches.
const defaultDetailsRPS = 10

// Client wraps the Google Maps Web Services client shared by the geocoder
// and the place searcher.
type Client struct {
	mc         *maps.Client
	detailsLim *rate.Limiter

	httpClient *http.Client
	baseURL    string
	detailsRPS float64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Used by tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL overrides the Google API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(cl *Client) { cl.baseURL = url }
}

// WithDetailsRPS overrides the place-details rate limit.
func WithDetailsRPS(rps float64) Option {
	return func(cl *Client) { cl.detailsRPS = rps }
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{detailsRPS: defaultDetailsRPS}
	for _, opt := range opts {
		opt(c)
	}

	mapsOpts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if c.httpClient != nil {
		mapsOpts = append(mapsOpts, maps.WithHTTPClient(c.httpClient))
	}
	if c.baseURL != "" {
		mapsOpts = append(mapsOpts, maps.WithBaseURL(c.baseURL))
	}

	mc, err := maps.NewClient(mapsOpts...)
	if err != nil {
		return nil, err
	}

	c.mc = mc
	c.detailsLim = rate.NewLimiter(rate.Limit(c.detailsRPS), 1)
	return c, nil
}
