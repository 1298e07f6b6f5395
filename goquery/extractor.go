// Package goquery implements a fallback dealerfinder.Extractor that strips
// scripts and styles and collects the visible text of the page. It preserves
// no structure, but succeeds on pages where trafilatura finds no main
// content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"golang.org/x/net/html"
)

// Ensure Extractor implements dealerfinder.Extractor at compile time.
var _ dealerfinder.Extractor = (*Extractor)(nil)

// Extractor extracts visible page text using goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's visible text wrapped in a single paragraph.
func (e *Extractor) Extract(rawHTML string) (*dealerfinder.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, dealerfinder.Errorf(dealerfinder.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, dealerfinder.Errorf(dealerfinder.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	body := doc.Find("body")
	body.Find("script, style, noscript, iframe, svg").Remove()

	// Equivalent of joining the document's stripped strings: collapse all
	// whitespace runs to single spaces.
	text := strings.Join(strings.Fields(body.Text()), " ")
	if text == "" {
		return nil, dealerfinder.Errorf(dealerfinder.ENOTFOUND, "no visible text found")
	}

	return &dealerfinder.ExtractResult{
		Title:       title,
		ContentHTML: "<p>" + html.EscapeString(text) + "</p>",
	}, nil
}
