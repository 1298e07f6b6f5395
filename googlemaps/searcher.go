package googlemaps

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"googlemaps.github.io/maps"
)

// DefaultQueries are the keyword searches run against the places API.
// Several phrasings are needed because the API surfaces different businesses
// for each.
var DefaultQueries = []string{
	"independent used car dealer",
	"used car dealer",
	"pre-owned car dealer",
	"used auto sales",
	"used vehicle dealer",
}

// Ensure Searcher implements dealerfinder.PlaceSearcher at compile time.
var _ dealerfinder.PlaceSearcher = (*Searcher)(nil)

// Searcher finds used-car businesses near a coordinate using the places
// nearby-search API, then fills phone and website from place details.
type Searcher struct {
	client  *Client
	queries []string
}

// NewSearcher creates a new Searcher using DefaultQueries.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client, queries: DefaultQueries}
}

// NewSearcherWithQueries creates a Searcher with a custom query list.
func NewSearcherWithQueries(client *Client, queries []string) *Searcher {
	return &Searcher{client: client, queries: queries}
}

// SearchNearby returns candidate listings in first-seen order, de-duplicated
// by place ID across the keyword queries.
func (s *Searcher) SearchNearby(ctx context.Context, origin dealerfinder.Coordinate, opts dealerfinder.SearchOptions) ([]*dealerfinder.Listing, error) {
	seen := make(map[string]bool)
	var listings []*dealerfinder.Listing

	for _, query := range s.queries {
		if len(listings) >= opts.MaxResults {
			break
		}

		resp, err := s.client.mc.NearbySearch(ctx, &maps.NearbySearchRequest{
			Location: &maps.LatLng{Lat: origin.Lat, Lng: origin.Lng},
			Radius:   uint(opts.RadiusMeters),
			Keyword:  query,
			Type:     maps.PlaceTypeCarDealer,
		})
		if err != nil {
			return nil, dealerfinder.Errorf(dealerfinder.EUNAVAILABLE, "places search %q: %v", query, err)
		}

		for i := range resp.Results {
			if len(listings) >= opts.MaxResults {
				break
			}
			r := &resp.Results[i]
			if r.PlaceID == "" || seen[r.PlaceID] {
				continue
			}
			seen[r.PlaceID] = true

			listing := s.toListing(ctx, r)
			if listing == nil {
				continue
			}
			listings = append(listings, listing)
		}
	}

	return listings, nil
}

// toListing builds a listing for one search result, fetching place details
// for phone and website. A failed details call degrades to the nearby-search
// fields rather than dropping the candidate; a candidate without a name and
// address is dropped.
func (s *Searcher) toListing(ctx context.Context, r *maps.PlacesSearchResult) *dealerfinder.Listing {
	listing := &dealerfinder.Listing{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.Vicinity,
		Location: dealerfinder.Coordinate{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
	}

	if err := s.client.detailsLim.Wait(ctx); err != nil {
		return nil
	}

	details, err := s.client.mc.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: r.PlaceID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
		},
	})
	if err == nil {
		if details.Name != "" {
			listing.Name = details.Name
		}
		if details.FormattedAddress != "" {
			listing.Address = details.FormattedAddress
		}
		listing.Phone = details.FormattedPhoneNumber
		listing.Website = details.Website
	}

	if listing.Validate() != nil {
		return nil
	}
	return listing
}
