// Package readability extracts the main content of a page with
// github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagequery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagequery.Extractor at compile time.
var _ pagequery.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*pagequery.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagequery.Errorf(pagequery.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagequery.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
