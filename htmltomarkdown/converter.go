// Package htmltomarkdown renders HTML fragments as Markdown using
// github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagequery"
)

// Ensure Converter implements pagequery.Converter at compile time.
var _ pagequery.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithBaseURL resolves relative links and image sources against u,
// typically the URL of the page the fragment came from.
func WithBaseURL(u string) Option {
	return func(c *Converter) {
		c.domain = u
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagequery.Errorf(pagequery.EINVALID, "empty HTML input")
	}

	if c.domain != "" {
		return c.conv.ConvertString(html, converter.WithDomain(c.domain))
	}
	return c.conv.ConvertString(html)
}
