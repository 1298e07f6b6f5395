package mock

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

var _ dealerfinder.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of dealerfinder.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, zip string) (dealerfinder.Coordinate, error)
}

func (g *Geocoder) Geocode(ctx context.Context, zip string) (dealerfinder.Coordinate, error) {
	return g.GeocodeFn(ctx, zip)
}
