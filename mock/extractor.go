package mock

import (
	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

var _ dealerfinder.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of dealerfinder.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*dealerfinder.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*dealerfinder.ExtractResult, error) {
	return e.ExtractFn(html)
}
