// Package crawl provides Fetcher decorators for polite, resilient fetching:
// per-domain rate limiting, retry with backoff and page caching.
package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/pagequery"
	"golang.org/x/time/rate"
)

var _ pagequery.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// It creates a separate rate limiter for each domain, allowing concurrent
// requests to different domains while enforcing rate limits within each domain.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Ensure LimitedFetcher implements pagequery.Fetcher at compile time.
var _ pagequery.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a DomainLimiter, keyed by the URL's host, before
// every fetch.
type LimitedFetcher struct {
	next    pagequery.Fetcher
	limiter pagequery.DomainLimiter
}

// NewLimitedFetcher creates a new LimitedFetcher.
func NewLimitedFetcher(next pagequery.Fetcher, limiter pagequery.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host's rate limit and delegates to the wrapped fetcher.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagequery.Errorf(pagequery.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
