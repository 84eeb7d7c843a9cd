package pagequery

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as UTF-8 HTML.
	// Network failures and non-success statuses are reported as EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
