package main

import (
	"fmt"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/goquery"
)

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	extractor, ok := deps.Extractors[c.Engine]
	if !ok {
		return pagequery.Errorf(pagequery.EINVALID, "unknown engine %q", c.Engine)
	}

	page := goquery.Load(deps.Ctx, deps.Fetcher, c.URL, deps.Reporter)
	if !page.Loaded() {
		return nil
	}

	html, err := page.Document().Html()
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	article, err := extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", page.URL(), err)
	}
	if article.ContentHTML == "" {
		fmt.Fprintln(deps.Stderr, "No main content found")
		return nil
	}

	content, err := deps.NewConverter(page.URL()).Convert(article.ContentHTML)
	if err != nil {
		return fmt.Errorf("converting %s: %w", page.URL(), err)
	}

	if c.Out != "" {
		return deps.NewArticleWriter(c.Out).WriteArticle(deps.Ctx, page.URL(), article.Title, content)
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, content)
	return nil
}
