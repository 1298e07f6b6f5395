// Package trafilatura implements dealerfinder.Extractor using
// go-trafilatura, the primary content extractor for dealer web pages.
package trafilatura

import (
	"bytes"
	"strings"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements dealerfinder.Extractor at compile time.
var _ dealerfinder.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from dealer pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. When trafilatura
// cannot produce a content node it falls back to its plain-text result, so a
// successful extraction always carries content.
func (e *Extractor) Extract(rawHTML string) (*dealerfinder.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, dealerfinder.Errorf(dealerfinder.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	} else if text := strings.TrimSpace(result.ContentText); text != "" {
		contentHTML = "<p>" + html.EscapeString(text) + "</p>"
	}

	if contentHTML == "" {
		return nil, dealerfinder.Errorf(dealerfinder.ENOTFOUND, "no main content found")
	}

	return &dealerfinder.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
