package mock

import "github.com/fwojciec/pagequery"

var _ pagequery.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagequery.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
