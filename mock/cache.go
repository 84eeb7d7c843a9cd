package mock

import (
	"context"

	"github.com/fwojciec/pagequery"
)

var _ pagequery.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of pagequery.PageCache.
type PageCache struct {
	FindPageFn func(ctx context.Context, url string) (*pagequery.CachedPage, error)
	SavePageFn func(ctx context.Context, page *pagequery.CachedPage) error
}

func (c *PageCache) FindPage(ctx context.Context, url string) (*pagequery.CachedPage, error) {
	return c.FindPageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, page *pagequery.CachedPage) error {
	return c.SavePageFn(ctx, page)
}
