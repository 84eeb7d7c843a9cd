package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/pagequery"
	"github.com/google/uuid"
)

var _ pagequery.PageCache = (*PageCache)(nil)

// PageCache implements pagequery.PageCache using SQLite.
type PageCache struct {
	db  *DB
	now func() time.Time
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db, now: time.Now}
}

// FindPage retrieves the cached page for url.
func (c *PageCache) FindPage(ctx context.Context, url string) (*pagequery.CachedPage, error) {
	var page pagequery.CachedPage
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, url, html, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagequery.Errorf(pagequery.ENOTFOUND, "page not cached: %s", url)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SavePage stores page, replacing any earlier copy of the same URL. A page
// whose content is unchanged keeps its ID.
func (c *PageCache) SavePage(ctx context.Context, page *pagequery.CachedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.ContentHash = hashContent(page.HTML)
	page.FetchedAt = c.now().UTC()

	return c.db.QueryRowContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			id = CASE WHEN pages.content_hash = excluded.content_hash THEN pages.id ELSE excluded.id END,
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, page.ID, page.URL, page.HTML, page.ContentHash, page.FetchedAt.Format(time.RFC3339Nano)).Scan(&page.ID)
}
