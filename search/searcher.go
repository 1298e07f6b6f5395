// Package search implements the dealer lookup pipeline: validate the zip,
// geocode it, query nearby places, drop franchise chains, and enrich each
// remaining listing with a best-effort website summary.
package search

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

// Outcome is the explicit per-listing enrichment result. A listing is always
// present in the search result; Summarized tells whether its summary was
// populated, and SummaryErr carries the swallowed enrichment error for
// logging and tests.
type Outcome struct {
	Listing    *dealerfinder.Listing
	Summarized bool
	SummaryErr error
}

// Result holds the ordered outcome of one dealer search.
type Result struct {
	Zip      string
	Outcomes []Outcome
}

// Listings returns the listings in result order.
func (r *Result) Listings() []*dealerfinder.Listing {
	listings := make([]*dealerfinder.Listing, len(r.Outcomes))
	for i, o := range r.Outcomes {
		listings[i] = o.Listing
	}
	return listings
}

// Searcher runs the dealer lookup pipeline. The pipeline is sequential:
// each external call blocks the next.
type Searcher struct {
	geocoder dealerfinder.Geocoder
	places   dealerfinder.PlaceSearcher
	denylist dealerfinder.Denylist
	enricher *Enricher
	opts     dealerfinder.SearchOptions
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithEnricher enables per-listing website summarization.
func WithEnricher(e *Enricher) Option {
	return func(s *Searcher) { s.enricher = e }
}

// WithDenylist replaces the default franchise denylist.
func WithDenylist(d dealerfinder.Denylist) Option {
	return func(s *Searcher) { s.denylist = d }
}

// WithSearchOptions replaces the default radius and result cap.
func WithSearchOptions(opts dealerfinder.SearchOptions) Option {
	return func(s *Searcher) { s.opts = opts }
}

// NewSearcher creates a Searcher with the default denylist and search
// options and no enrichment.
func NewSearcher(geocoder dealerfinder.Geocoder, places dealerfinder.PlaceSearcher, opts ...Option) *Searcher {
	s := &Searcher{
		geocoder: geocoder,
		places:   places,
		denylist: dealerfinder.DefaultDenylist(),
		opts:     dealerfinder.DefaultSearchOptions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the listings for a 5-digit zip code, in places-API order.
// An empty result is not an error: it renders as "no dealers found".
// Geocoding and places failures are terminal; enrichment failures degrade
// individual listings only.
func (s *Searcher) Search(ctx context.Context, zip string) (*Result, error) {
	if err := dealerfinder.ValidateZipCode(zip); err != nil {
		return nil, err
	}

	origin, err := s.geocoder.Geocode(ctx, zip)
	if err != nil {
		return nil, err
	}

	listings, err := s.places.SearchNearby(ctx, origin, s.opts)
	if err != nil {
		return nil, err
	}

	if s.opts.SameZipOnly {
		listings = sameZip(listings, zip)
	}
	listings = s.denylist.Filter(listings)

	result := &Result{Zip: zip, Outcomes: make([]Outcome, 0, len(listings))}
	for _, l := range listings {
		result.Outcomes = append(result.Outcomes, s.enrich(ctx, l))
	}
	return result, nil
}

// enrich attaches a website summary to the listing when possible. Any
// failure leaves the summary empty and is recorded on the outcome.
func (s *Searcher) enrich(ctx context.Context, l *dealerfinder.Listing) Outcome {
	if s.enricher == nil || l.Website == "" {
		return Outcome{Listing: l}
	}

	summary, err := s.enricher.Enrich(ctx, l)
	if err != nil {
		return Outcome{Listing: l, SummaryErr: err}
	}

	l.Summary = summary
	return Outcome{Listing: l, Summarized: true}
}

func sameZip(listings []*dealerfinder.Listing, zip string) []*dealerfinder.Listing {
	kept := make([]*dealerfinder.Listing, 0, len(listings))
	for _, l := range listings {
		if dealerfinder.ExtractZipCode(l.Address) == zip {
			kept = append(kept, l)
		}
	}
	return kept
}
