package main

import (
	"fmt"
	"sync"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the emails command. Pages that fail to load are reported and
// contribute nothing.
func (c *EmailsCmd) Run(deps *Dependencies) error {
	urls, err := c.pageURLs(deps)
	if err != nil {
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var mu sync.Mutex
	emails := pagequery.EmailSet{}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for _, u := range urls {
		g.Go(func() error {
			found := goquery.Load(ctx, deps.Fetcher, u, deps.Reporter).Emails()

			mu.Lock()
			emails.Merge(found)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, addr := range emails.Sorted() {
		fmt.Fprintln(deps.Stdout, addr)
	}
	return nil
}

// pageURLs returns the pages to scan in order, each once. With --sitemap
// every argument is expanded to the pages its sitemap lists; a site whose
// sitemap cannot be read is reported and skipped.
func (c *EmailsCmd) pageURLs(deps *Dependencies) ([]string, error) {
	candidates := c.URLs
	if c.Sitemap {
		candidates = nil
		for _, site := range c.URLs {
			found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site)
			if err != nil {
				if ctxErr := deps.Ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				deps.Reporter.Report(site, err)
				continue
			}
			candidates = append(candidates, found...)
		}
	}

	if deps.NewVisitedSet == nil {
		return candidates, nil
	}
	visited := deps.NewVisitedSet(len(candidates))
	urls := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if visited.Visit(u) {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
