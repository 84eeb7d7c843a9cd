package main

import (
	"fmt"

	"github.com/fwojciec/pagequery/goquery"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	page := goquery.Load(deps.Ctx, deps.Fetcher, c.URL, deps.Reporter)

	for _, el := range goquery.Select(page, c.Tag, c.Class, c.All) {
		switch c.Format {
		case FormatHTML, FormatMarkdown:
			out, err := goquery.OuterHTML(el)
			if err != nil {
				return fmt.Errorf("rendering <%s>: %w", c.Tag, err)
			}
			if c.Format == FormatMarkdown {
				if out, err = deps.NewConverter(page.URL()).Convert(out); err != nil {
					return fmt.Errorf("converting <%s>: %w", c.Tag, err)
				}
			}
			fmt.Fprintln(deps.Stdout, out)
		default:
			fmt.Fprintln(deps.Stdout, goquery.ExtractText(el))
		}
	}

	return nil
}
