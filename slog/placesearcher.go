package slog

import (
	"context"
	"log/slog"
	"time"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

// Ensure LoggingPlaceSearcher implements dealerfinder.PlaceSearcher.
var _ dealerfinder.PlaceSearcher = (*LoggingPlaceSearcher)(nil)

// LoggingPlaceSearcher wraps a PlaceSearcher with per-call logging.
type LoggingPlaceSearcher struct {
	next   dealerfinder.PlaceSearcher
	logger *slog.Logger
}

// NewLoggingPlaceSearcher creates a new LoggingPlaceSearcher.
func NewLoggingPlaceSearcher(next dealerfinder.PlaceSearcher, logger *slog.Logger) *LoggingPlaceSearcher {
	return &LoggingPlaceSearcher{next: next, logger: logger}
}

// SearchNearby logs the search parameters and result count and delegates to
// the wrapped searcher.
func (s *LoggingPlaceSearcher) SearchNearby(ctx context.Context, origin dealerfinder.Coordinate, opts dealerfinder.SearchOptions) (listings []*dealerfinder.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("places search",
			"lat", origin.Lat,
			"lng", origin.Lng,
			"radius_m", opts.RadiusMeters,
			"results", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchNearby(ctx, origin, opts)
}
