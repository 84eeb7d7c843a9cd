package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagequery"
)

var _ pagequery.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from sitemap XML served over HTTP.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService. A nil client means
// http.DefaultClient.
func NewSitemapService(client *http.Client, userAgent string) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: userAgent}
}

// DiscoverURLs implements pagequery.SitemapService. Sitemap indexes are
// followed recursively and each sitemap is read at most once.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string) ([]string, error) {
	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return nil, pagequery.Errorf(pagequery.EINVALID, "invalid site URL %q", siteURL)
	}

	prefix := site.Path
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	root := &url.URL{Scheme: site.Scheme, Host: site.Host, Path: "/"}

	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{
		svc:      s,
		visited:  make(map[string]bool),
		listed:   make(map[string]bool),
		prefix:   prefix,
		pageURLs: []string{},
	}
	for _, sm := range sitemaps {
		if err := w.visit(ctx, sm); err != nil {
			return nil, err
		}
	}
	return w.pageURLs, nil
}

// locateSitemaps returns the Sitemap: directives of robots.txt, or
// /sitemap.xml when robots.txt lists none. A missing fallback is not an
// error.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	if body, err := s.get(ctx, root.JoinPath("robots.txt").String()); err == nil {
		defer body.Close()

		var sitemaps []string
		sc := bufio.NewScanner(body)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			key, val, ok := strings.Cut(line, ":")
			if ok && strings.EqualFold(strings.TrimSpace(key), "sitemap") {
				if loc := strings.TrimSpace(val); loc != "" {
					sitemaps = append(sitemaps, loc)
				}
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{root.JoinPath("sitemap.xml").String()}, nil
}

type sitemapWalk struct {
	svc      *SitemapService
	visited  map[string]bool
	listed   map[string]bool
	prefix   string
	pageURLs []string
}

func (w *sitemapWalk) visit(ctx context.Context, sitemapURL string) error {
	if w.visited[sitemapURL] {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// A sitemap that cannot be fetched contributes nothing.
		return nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return pagequery.Errorf(pagequery.EINVALID, "malformed sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return pagequery.Errorf(pagequery.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, loc := range locs(root, "sitemap") {
			if err := w.visit(ctx, loc); err != nil {
				return err
			}
		}
		return nil
	}

	for _, loc := range locs(root, "url") {
		if w.listed[loc] || !w.underPrefix(loc) {
			continue
		}
		w.listed[loc] = true
		w.pageURLs = append(w.pageURLs, loc)
	}
	return nil
}

// underPrefix reports whether loc lies under the site path, respecting
// path segment boundaries: /docs/ admits /docs/intro but not /documentation.
func (w *sitemapWalk) underPrefix(loc string) bool {
	if w.prefix == "" || w.prefix == "/" {
		return true
	}
	u, err := url.Parse(loc)
	if err != nil {
		return false
	}
	return strings.HasPrefix(u.Path+"/", w.prefix)
}

// locs returns the trimmed, non-empty <loc> texts of the named children of
// root.
func locs(root *etree.Element, child string) []string {
	var out []string
	for _, el := range root.SelectElements(child) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if s := strings.TrimSpace(loc.Text()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, pagequery.Errorf(pagequery.EINVALID, "invalid URL %q: %v", target, err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pagequery.Errorf(pagequery.EUNAVAILABLE, "%v", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, pagequery.Errorf(pagequery.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
