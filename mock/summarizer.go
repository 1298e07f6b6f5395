package mock

import (
	"context"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

var _ dealerfinder.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of dealerfinder.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, dealerName, pageText string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, dealerName, pageText string) (string, error) {
	return s.SummarizeFn(ctx, dealerName, pageText)
}
