package dealerfinder

import "context"

// Coordinate is a geographic point in WGS84 degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing represents one candidate dealer business returned for a search.
// Listings are transient: they exist only for the duration of a single
// search and are never persisted.
type Listing struct {
	// PlaceID is the places API identifier, used only to de-duplicate
	// results across keyword queries.
	PlaceID string `json:"placeId"`

	Name    string `json:"name"`
	Address string `json:"address"`

	// Best-effort fields. Any of these may be empty if the upstream API
	// omitted them or enrichment failed.
	Phone    string     `json:"phone,omitempty"`
	Website  string     `json:"website,omitempty"`
	Summary  string     `json:"summary,omitempty"`
	Location Coordinate `json:"location"`
}

// Validate returns an error if the listing is missing required fields.
// Name and address are always present on a well-formed listing.
func (l *Listing) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "listing name required")
	}
	if l.Address == "" {
		return Errorf(EINVALID, "listing address required")
	}
	return nil
}

// SearchOptions control a nearby-business search.
type SearchOptions struct {
	// RadiusMeters is the search radius around the origin.
	RadiusMeters int

	// MaxResults caps the number of listings returned.
	MaxResults int

	// SameZipOnly keeps only listings whose address contains the searched
	// zip code.
	SameZipOnly bool
}

// DefaultSearchOptions returns the standard radius (15 km) and result cap (20).
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		RadiusMeters: 15000,
		MaxResults:   20,
	}
}

// Geocoder resolves a US zip code to a geographic coordinate.
type Geocoder interface {
	// Geocode returns the coordinate for the zip code.
	// Returns ENOTFOUND if the zip does not resolve to a location.
	Geocode(ctx context.Context, zip string) (Coordinate, error)
}

// PlaceSearcher finds used-car-dealer businesses near a coordinate.
type PlaceSearcher interface {
	// SearchNearby returns candidate listings in the order reported by the
	// places API. Name and address are populated on every returned listing;
	// phone and website are best-effort.
	SearchNearby(ctx context.Context, origin Coordinate, opts SearchOptions) ([]*Listing, error)
}
