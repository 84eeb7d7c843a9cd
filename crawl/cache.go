package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/pagequery"
)

// Ensure CachingFetcher implements pagequery.Fetcher at compile time.
var _ pagequery.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves pages from a PageCache and stores every successful
// fetch of the wrapped fetcher. Failed fetches are never cached.
type CachingFetcher struct {
	next   pagequery.Fetcher
	cache  pagequery.PageCache
	maxAge time.Duration
	now    func() time.Time
	logger LogFunc
}

// CacheOption configures a CachingFetcher.
type CacheOption func(*CachingFetcher)

// WithMaxAge makes cached pages older than d stale. Zero, the default, keeps
// cached pages forever.
func WithMaxAge(d time.Duration) CacheOption {
	return func(f *CachingFetcher) {
		f.maxAge = d
	}
}

// WithCacheLogger sets a function called when the cache cannot be read or
// written. Cache failures never fail a fetch.
func WithCacheLogger(logger LogFunc) CacheOption {
	return func(f *CachingFetcher) {
		f.logger = logger
	}
}

// WithClock replaces time.Now for staleness checks.
func WithClock(now func() time.Time) CacheOption {
	return func(f *CachingFetcher) {
		f.now = now
	}
}

// NewCachingFetcher creates a new CachingFetcher.
func NewCachingFetcher(next pagequery.Fetcher, cache pagequery.PageCache, opts ...CacheOption) *CachingFetcher {
	f := &CachingFetcher{
		next:  next,
		cache: cache,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the cached body of url when it is fresh and fetches it
// otherwise.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := f.cache.FindPage(ctx, url)
	switch {
	case err == nil && f.fresh(page):
		return page.HTML, nil
	case err != nil && pagequery.ErrorCode(err) != pagequery.ENOTFOUND:
		f.logf("cache read %s: %v", url, err)
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.cache.SavePage(ctx, &pagequery.CachedPage{URL: url, HTML: html}); err != nil {
		f.logf("cache write %s: %v", url, err)
	}
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}

func (f *CachingFetcher) fresh(page *pagequery.CachedPage) bool {
	return f.maxAge <= 0 || f.now().Sub(page.FetchedAt) <= f.maxAge
}

func (f *CachingFetcher) logf(format string, args ...any) {
	if f.logger != nil {
		f.logger(format, args...)
	}
}
