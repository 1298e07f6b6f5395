package dealerfinder

// ExtractResult holds the extracted content from a dealer web page.
type ExtractResult struct {
	// Title is the page title extracted from metadata, if any.
	Title string

	// ContentHTML is the main content with boilerplate (nav, footer,
	// scripts, ads) removed. Implementations that cannot preserve markup
	// may return plain text wrapped in minimal HTML.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
