package search_test

import (
	"context"
	"errors"
	"testing"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/ammanabbasi/used-car-dealer-finder/mock"
	"github.com/ammanabbasi/used-car-dealer-finder/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnricher_Enrich(t *testing.T) {
	t.Parallel()

	var summarizedText string
	e := search.NewEnricher(
		&mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, "https://joes.example", url)
			return "<html><body><p>family owned</p></body></html>", nil
		}},
		&mock.Extractor{ExtractFn: func(html string) (*dealerfinder.ExtractResult, error) {
			return &dealerfinder.ExtractResult{ContentHTML: "<p>family owned</p>"}, nil
		}},
		nil,
		&mock.Converter{ConvertFn: func(html string) (string, error) { return "family owned", nil }},
		&mock.Summarizer{SummarizeFn: func(_ context.Context, name, text string) (string, error) {
			assert.Equal(t, "Joe's Auto Sales", name)
			summarizedText = text
			return "A family-owned dealer.", nil
		}},
	)

	summary, err := e.Enrich(context.Background(), &dealerfinder.Listing{
		Name:    "Joe's Auto Sales",
		Address: "1 Main St",
		Website: "https://joes.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "A family-owned dealer.", summary)
	assert.Equal(t, "family owned", summarizedText)
}

func TestEnricher_Enrich_NoWebsite(t *testing.T) {
	t.Parallel()

	e := search.NewEnricher(nil, nil, nil, nil, nil)

	_, err := e.Enrich(context.Background(), &dealerfinder.Listing{Name: "Joe's", Address: "1 Main St"})

	require.Error(t, err)
	assert.Equal(t, dealerfinder.EINVALID, dealerfinder.ErrorCode(err))
}

func TestEnricher_Enrich_FallbackExtractor(t *testing.T) {
	t.Parallel()

	primaryErr := errors.New("no main content")
	e := search.NewEnricher(
		&mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "<html><body>sparse</body></html>", nil
		}},
		&mock.Extractor{ExtractFn: func(string) (*dealerfinder.ExtractResult, error) {
			return nil, primaryErr
		}},
		&mock.Extractor{ExtractFn: func(string) (*dealerfinder.ExtractResult, error) {
			return &dealerfinder.ExtractResult{ContentHTML: "<p>sparse</p>"}, nil
		}},
		&mock.Converter{ConvertFn: func(string) (string, error) { return "sparse", nil }},
		&mock.Summarizer{SummarizeFn: func(context.Context, string, string) (string, error) {
			return "ok", nil
		}},
	)

	summary, err := e.Enrich(context.Background(), &dealerfinder.Listing{
		Name: "Joe's", Address: "1 Main St", Website: "https://joes.example",
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", summary)
}

func TestEnricher_Enrich_FetchFailure(t *testing.T) {
	t.Parallel()

	e := search.NewEnricher(
		&mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		}},
		nil, nil, nil, nil,
	)

	_, err := e.Enrich(context.Background(), &dealerfinder.Listing{
		Name: "Joe's", Address: "1 Main St", Website: "https://joes.example",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching https://joes.example")
}

func TestEnricher_Enrich_BothExtractorsFail(t *testing.T) {
	t.Parallel()

	e := search.NewEnricher(
		&mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "<html></html>", nil
		}},
		&mock.Extractor{ExtractFn: func(string) (*dealerfinder.ExtractResult, error) {
			return nil, errors.New("primary failed")
		}},
		&mock.Extractor{ExtractFn: func(string) (*dealerfinder.ExtractResult, error) {
			return nil, errors.New("fallback failed")
		}},
		nil, nil,
	)

	_, err := e.Enrich(context.Background(), &dealerfinder.Listing{
		Name: "Joe's", Address: "1 Main St", Website: "https://joes.example",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback failed")
}
