package googlemaps_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/ammanabbasi/used-car-dealer-finder/googlemaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placesHandler(t *testing.T, nearbyByKeyword map[string]string, details map[string]string) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/maps/api/place/nearbysearch/json":
			body, ok := nearbyByKeyword[r.URL.Query().Get("keyword")]
			if !ok {
				body = `{"status": "ZERO_RESULTS", "results": []}`
			}
			_, _ = w.Write([]byte(body))
		case "/maps/api/place/details/json":
			body, ok := details[r.URL.Query().Get("placeid")]
			if !ok {
				body = `{"status": "NOT_FOUND"}`
			}
			_, _ = w.Write([]byte(body))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
}

func nearbyResult(placeID, name, vicinity string) string {
	return fmt.Sprintf(`{"place_id": %q, "name": %q, "vicinity": %q, "geometry": {"location": {"lat": 34.1, "lng": -118.4}}}`, placeID, name, vicinity)
}

func detailsResult(name, address, phone, website string) string {
	return fmt.Sprintf(`{"status": "OK", "result": {"name": %q, "formatted_address": %q, "formatted_phone_number": %q, "website": %q}}`,
		name, address, phone, website)
}

func TestSearcher_SearchNearby(t *testing.T) {
	t.Parallel()

	nearby := map[string]string{
		"independent used car dealer": `{"status": "OK", "results": [` +
			nearbyResult("p1", "Joe's Auto Sales", "1 Main St") + `,` +
			nearbyResult("p2", "Valley Motors", "2 Oak Ave") + `]}`,
	}
	details := map[string]string{
		"p1": detailsResult("Joe's Auto Sales", "1 Main St, Bristow, VA 20136, USA", "(703) 555-0101", "https://joesauto.example"),
		"p2": detailsResult("Valley Motors", "2 Oak Ave, Bristow, VA 20136, USA", "", ""),
	}

	client := newTestClient(t, placesHandler(t, nearby, details))
	searcher := googlemaps.NewSearcher(client)

	listings, err := searcher.SearchNearby(context.Background(), dealerfinder.Coordinate{Lat: 34.1, Lng: -118.4}, dealerfinder.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Joe's Auto Sales", listings[0].Name)
	assert.Equal(t, "1 Main St, Bristow, VA 20136, USA", listings[0].Address)
	assert.Equal(t, "(703) 555-0101", listings[0].Phone)
	assert.Equal(t, "https://joesauto.example", listings[0].Website)
	assert.Equal(t, "Valley Motors", listings[1].Name)
	assert.Empty(t, listings[1].Phone)
}

func TestSearcher_SearchNearby_DeduplicatesAcrossQueries(t *testing.T) {
	t.Parallel()

	shared := nearbyResult("p1", "Joe's Auto Sales", "1 Main St")
	nearby := map[string]string{
		"independent used car dealer": `{"status": "OK", "results": [` + shared + `]}`,
		"used car dealer":             `{"status": "OK", "results": [` + shared + `,` + nearbyResult("p2", "Valley Motors", "2 Oak Ave") + `]}`,
	}
	details := map[string]string{}

	client := newTestClient(t, placesHandler(t, nearby, details))
	searcher := googlemaps.NewSearcher(client)

	listings, err := searcher.SearchNearby(context.Background(), dealerfinder.Coordinate{}, dealerfinder.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "p1", listings[0].PlaceID)
	assert.Equal(t, "p2", listings[1].PlaceID)
}

func TestSearcher_SearchNearby_DetailsFailureDegrades(t *testing.T) {
	t.Parallel()

	nearby := map[string]string{
		"independent used car dealer": `{"status": "OK", "results": [` + nearbyResult("p1", "Joe's Auto Sales", "1 Main St") + `]}`,
	}

	// No details entry: the handler answers NOT_FOUND, so the listing keeps
	// the nearby-search name and vicinity.
	client := newTestClient(t, placesHandler(t, nearby, map[string]string{}))
	searcher := googlemaps.NewSearcher(client)

	listings, err := searcher.SearchNearby(context.Background(), dealerfinder.Coordinate{}, dealerfinder.DefaultSearchOptions())

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Joe's Auto Sales", listings[0].Name)
	assert.Equal(t, "1 Main St", listings[0].Address)
	assert.Empty(t, listings[0].Website)
}

func TestSearcher_SearchNearby_RespectsMaxResults(t *testing.T) {
	t.Parallel()

	var results string
	for i := 0; i < 5; i++ {
		if i > 0 {
			results += ","
		}
		results += nearbyResult(fmt.Sprintf("p%d", i), fmt.Sprintf("Dealer %d", i), fmt.Sprintf("%d Main St", i))
	}
	nearby := map[string]string{
		"independent used car dealer": `{"status": "OK", "results": [` + results + `]}`,
	}

	client := newTestClient(t, placesHandler(t, nearby, map[string]string{}))
	searcher := googlemaps.NewSearcher(client)

	opts := dealerfinder.DefaultSearchOptions()
	opts.MaxResults = 3

	listings, err := searcher.SearchNearby(context.Background(), dealerfinder.Coordinate{}, opts)

	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestSearcher_SearchNearby_APIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
	}))
	searcher := googlemaps.NewSearcher(client)

	_, err := searcher.SearchNearby(context.Background(), dealerfinder.Coordinate{}, dealerfinder.DefaultSearchOptions())

	require.Error(t, err)
	assert.Equal(t, dealerfinder.EUNAVAILABLE, dealerfinder.ErrorCode(err))
}
