package googlemaps

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"googlemaps.github.io/maps"
)

// Ensure Geocoder implements dealerfinder.Geocoder at compile time.
var _ dealerfinder.Geocoder = (*Geocoder)(nil)

// Geocoder resolves US zip codes to coordinates using the geocoding API.
type Geocoder struct {
	client *Client
}

// NewGeocoder creates a new Geocoder.
func NewGeocoder(client *Client) *Geocoder {
	return &Geocoder{client: client}
}

// Geocode returns the coordinate for the zip code.
func (g *Geocoder) Geocode(ctx context.Context, zip string) (dealerfinder.Coordinate, error) {
	if err := dealerfinder.ValidateZipCode(zip); err != nil {
		return dealerfinder.Coordinate{}, err
	}

	results, err := g.client.mc.Geocode(ctx, &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: zip,
			maps.ComponentCountry:    "US",
		},
	})
	if err != nil {
		return dealerfinder.Coordinate{}, dealerfinder.Errorf(dealerfinder.EUNAVAILABLE, "geocoding zip %s: %v", zip, err)
	}
	if len(results) == 0 {
		return dealerfinder.Coordinate{}, dealerfinder.Errorf(dealerfinder.ENOTFOUND, "no location found for zip code %s", zip)
	}

	loc := results[0].Geometry.Location
	return dealerfinder.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}
