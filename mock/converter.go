package mock

import (
	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
)

var _ dealerfinder.Converter = (*Converter)(nil)

// Converter is a mock implementation of dealerfinder.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
