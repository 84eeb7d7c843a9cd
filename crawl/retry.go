package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/pagequery"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// BackoffDelays returns n delays doubling from 1s. n <= 0 returns no delays,
// which means a single attempt.
func BackoffDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// FetchWithRetryDelays calls fetch once, then once more after each delay
// until it succeeds. Errors other than EUNAVAILABLE are not retried.
// The logger function, if provided, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Don't retry after the last attempt or on errors retrying cannot fix
		if attempt >= maxAttempts-1 || pagequery.ErrorCode(err) != pagequery.EUNAVAILABLE {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Ensure RetryFetcher implements pagequery.Fetcher at compile time.
var _ pagequery.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries unavailable pages with backoff.
type RetryFetcher struct {
	next   pagequery.Fetcher
	delays []time.Duration
	logger LogFunc
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithRetryDelays sets the delays between attempts.
// Defaults to DefaultRetryDelays() if not specified.
func WithRetryDelays(delays []time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.delays = delays
	}
}

// WithRetryLogger sets a function called before each retry.
func WithRetryLogger(logger LogFunc) RetryOption {
	return func(f *RetryFetcher) {
		f.logger = logger
	}
}

// NewRetryFetcher creates a new RetryFetcher.
func NewRetryFetcher(next pagequery.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:   next,
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch delegates to the wrapped fetcher, retrying on EUNAVAILABLE.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return FetchWithRetryDelays(ctx, url, f.next.Fetch, f.logger, f.delays)
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
