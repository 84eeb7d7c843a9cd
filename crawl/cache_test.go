package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/crawl"
	"github.com/fwojciec/pagequery/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is an in-memory pagequery.PageCache for tests.
func memoryCache() (*mock.PageCache, map[string]*pagequery.CachedPage) {
	pages := map[string]*pagequery.CachedPage{}
	return &mock.PageCache{
		FindPageFn: func(_ context.Context, url string) (*pagequery.CachedPage, error) {
			p, ok := pages[url]
			if !ok {
				return nil, pagequery.Errorf(pagequery.ENOTFOUND, "page not cached: %s", url)
			}
			return p, nil
		},
		SavePageFn: func(_ context.Context, page *pagequery.CachedPage) error {
			page.FetchedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
			pages[page.URL] = page
			return nil
		},
	}, pages
}

func TestCachingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("fetches and stores on miss", func(t *testing.T) {
		t.Parallel()

		cache, pages := memoryCache()
		calls := 0
		next := &mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
			calls++
			return "<p>" + url + "</p>", nil
		}}
		f := crawl.NewCachingFetcher(next, cache)

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<p>https://example.com</p>", html)
		assert.Equal(t, 1, calls)
		require.Contains(t, pages, "https://example.com")
		assert.Equal(t, html, pages["https://example.com"].HTML)
	})

	t.Run("serves hit without fetching", func(t *testing.T) {
		t.Parallel()

		cache, pages := memoryCache()
		pages["https://example.com"] = &pagequery.CachedPage{URL: "https://example.com", HTML: "<p>cached</p>", FetchedAt: time.Now()}
		next := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			t.Fatal("fetch must not be called on hit")
			return "", nil
		}}
		f := crawl.NewCachingFetcher(next, cache)

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<p>cached</p>", html)
	})

	t.Run("refetches stale page", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		cache, pages := memoryCache()
		pages["https://example.com"] = &pagequery.CachedPage{URL: "https://example.com", HTML: "<p>old</p>", FetchedAt: now.Add(-2 * time.Hour)}
		next := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "<p>new</p>", nil
		}}
		f := crawl.NewCachingFetcher(next, cache,
			crawl.WithMaxAge(time.Hour),
			crawl.WithClock(func() time.Time { return now }),
		)

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", html)
		assert.Equal(t, "<p>new</p>", pages["https://example.com"].HTML)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		cache, pages := memoryCache()
		next := &mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
			return "", pagequery.Errorf(pagequery.EUNAVAILABLE, "HTTP 404 for %s", url)
		}}
		f := crawl.NewCachingFetcher(next, cache)

		_, err := f.Fetch(context.Background(), "https://example.com")

		assert.Equal(t, pagequery.EUNAVAILABLE, pagequery.ErrorCode(err))
		assert.Empty(t, pages)
	})

	t.Run("cache errors do not fail the fetch", func(t *testing.T) {
		t.Parallel()

		cache := &mock.PageCache{
			FindPageFn: func(context.Context, string) (*pagequery.CachedPage, error) {
				return nil, errors.New("disk I/O error")
			},
			SavePageFn: func(context.Context, *pagequery.CachedPage) error {
				return errors.New("database is locked")
			},
		}
		next := &mock.Fetcher{FetchFn: func(context.Context, string) (string, error) {
			return "<p>live</p>", nil
		}}
		var logs []string
		f := crawl.NewCachingFetcher(next, cache, crawl.WithCacheLogger(func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		}))

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<p>live</p>", html)
		assert.Equal(t, []string{
			"cache read https://example.com: disk I/O error",
			"cache write https://example.com: database is locked",
		}, logs)
	})
}

func TestCachingFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	next := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}
	f := crawl.NewCachingFetcher(next, &mock.PageCache{})

	require.NoError(t, f.Close())
	assert.True(t, closed)
}
