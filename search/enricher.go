package search

import (
	"context"
	"fmt"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

// Enricher produces a website summary for one listing: fetch the site,
// extract main content, convert it to markdown, and summarize it. Every
// step gets a single attempt.
type Enricher struct {
	fetcher    dealerfinder.Fetcher
	extractor  dealerfinder.Extractor
	fallback   dealerfinder.Extractor
	converter  dealerfinder.Converter
	summarizer dealerfinder.Summarizer
}

// NewEnricher creates an Enricher. fallback may be nil to disable the
// second-chance extractor.
func NewEnricher(fetcher dealerfinder.Fetcher, extractor, fallback dealerfinder.Extractor, converter dealerfinder.Converter, summarizer dealerfinder.Summarizer) *Enricher {
	return &Enricher{
		fetcher:    fetcher,
		extractor:  extractor,
		fallback:   fallback,
		converter:  converter,
		summarizer: summarizer,
	}
}

// Enrich returns a short summary of the listing's website.
func (e *Enricher) Enrich(ctx context.Context, l *dealerfinder.Listing) (string, error) {
	if l.Website == "" {
		return "", dealerfinder.Errorf(dealerfinder.EINVALID, "listing has no website")
	}

	html, err := e.fetcher.Fetch(ctx, l.Website)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", l.Website, err)
	}

	extracted, err := e.extract(html)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", l.Website, err)
	}

	text, err := e.converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", l.Website, err)
	}

	summary, err := e.summarizer.Summarize(ctx, l.Name, text)
	if err != nil {
		return "", fmt.Errorf("summarizing %s: %w", l.Website, err)
	}
	return summary, nil
}

// extract runs the primary extractor, falling back to the secondary one the
// way the original tool fell back from trafilatura to soup parsing.
func (e *Enricher) extract(html string) (*dealerfinder.ExtractResult, error) {
	result, err := e.extractor.Extract(html)
	if err == nil {
		return result, nil
	}
	if e.fallback == nil {
		return nil, err
	}
	return e.fallback.Extract(html)
}
