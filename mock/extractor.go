package mock

import "github.com/fwojciec/pagequery"

var _ pagequery.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagequery.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagequery.Article, error)
}

func (e *Extractor) Extract(html string) (*pagequery.Article, error) {
	return e.ExtractFn(html)
}
