package mock

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

var _ dealerfinder.PlaceSearcher = (*PlaceSearcher)(nil)

// PlaceSearcher is a mock implementation of dealerfinder.PlaceSearcher.
type PlaceSearcher struct {
	SearchNearbyFn func(ctx context.Context, origin dealerfinder.Coordinate, opts dealerfinder.SearchOptions) ([]*dealerfinder.Listing, error)
}

func (s *PlaceSearcher) SearchNearby(ctx context.Context, origin dealerfinder.Coordinate, opts dealerfinder.SearchOptions) ([]*dealerfinder.Listing, error) {
	return s.SearchNearbyFn(ctx, origin, opts)
}
