package pagequery

import (
	"context"
	"time"
)

// CachedPage is a fetched page body kept for reuse.
type CachedPage struct {
	ID          string
	URL         string
	HTML        string
	ContentHash string
	FetchedAt   time.Time
}

// Validate returns an error if the cached page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "cached page URL required")
	}
	return nil
}

// PageCache stores fetched page bodies keyed by URL.
type PageCache interface {
	// FindPage returns the cached page for url.
	// Returns ENOTFOUND if the URL has never been stored.
	FindPage(ctx context.Context, url string) (*CachedPage, error)

	// SavePage stores the page, replacing any earlier copy of the same URL.
	// ID, ContentHash and FetchedAt are set by the implementation.
	SavePage(ctx context.Context, page *CachedPage) error
}
