package pagequery

import "context"

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs reads the sitemaps advertised by robots.txt, falling back
	// to /sitemap.xml, and returns the listed page URLs. When siteURL has a
	// path, only URLs under that path are returned. Returns an empty slice
	// if the site publishes no sitemap.
	DiscoverURLs(ctx context.Context, siteURL string) ([]string, error)
}
