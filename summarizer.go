package dealerfinder

import "context"

// Summarizer produces a short textual summary of a dealer's website content.
// Summarization is best-effort: callers treat any error as a degraded
// listing, never as a failed search.
type Summarizer interface {
	// Summarize returns a short description of the dealer based on the
	// extracted page text. dealerName gives the model context for pages
	// that never state the business name.
	Summarize(ctx context.Context, dealerName, pageText string) (string, error)
}
