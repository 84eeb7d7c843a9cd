// Package goquery implements page loading and querying on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagequery"
	"golang.org/x/net/html"
)

// Page is a fetched and parsed HTML page.
//
// A Page whose fetch or parse failed holds no document. Every query on such a
// page returns the empty value for its type instead of failing.
type Page struct {
	url string
	doc *goquery.Document
	err error
}

// Load fetches url and parses the response into a Page.
//
// Load never fails. When the page is unavailable the error is handed to
// reporter (if non-nil) and the returned Page holds no document.
func Load(ctx context.Context, fetcher pagequery.Fetcher, url string, reporter pagequery.Reporter) *Page {
	p, err := load(ctx, fetcher, url)
	if err != nil {
		if reporter != nil {
			reporter.Report(url, err)
		}
		return &Page{url: url, err: err}
	}
	return p
}

func load(ctx context.Context, fetcher pagequery.Fetcher, url string) (*Page, error) {
	if url == "" {
		return nil, pagequery.Errorf(pagequery.EINVALID, "URL required")
	}

	body, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return NewPage(url, body)
}

// NewPage parses already-fetched HTML into a Page.
// The HTML5 parser is permissive, so malformed markup is not an error.
// Text outside the root element is discarded before parsing.
func NewPage(url, rawHTML string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stripStrayText(rawHTML)))
	if err != nil {
		return nil, pagequery.Errorf(pagequery.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Page{url: url, doc: doc}, nil
}

// URL returns the URL the page was loaded from.
func (p *Page) URL() string {
	if p == nil {
		return ""
	}
	return p.url
}

// Loaded reports whether the page holds a parsed document.
func (p *Page) Loaded() bool {
	return p != nil && p.doc != nil
}

// Err returns the error that prevented the page from loading, if any.
func (p *Page) Err() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Document returns the underlying goquery document, or nil if the page
// failed to load.
func (p *Page) Document() *goquery.Document {
	if !p.Loaded() {
		return nil
	}
	return p.doc
}

// FindEl returns the first element in document order named tag and, when
// className is not empty, carrying className in its class list.
// Returns nil if nothing matches or the page holds no document.
func (p *Page) FindEl(tag, className string) *goquery.Selection {
	if !p.Loaded() {
		return nil
	}

	tag = strings.ToLower(tag)
	var found *html.Node
	walkElements(p.doc.Get(0), func(n *html.Node) bool {
		if matches(n, tag, className) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return p.doc.FindNodes(found)
}

// FindEls returns every element matching the FindEl predicate, in document
// order. Returns an empty slice if nothing matches or the page holds no
// document.
func (p *Page) FindEls(tag, className string) []*goquery.Selection {
	if !p.Loaded() {
		return []*goquery.Selection{}
	}

	tag = strings.ToLower(tag)
	els := []*goquery.Selection{}
	walkElements(p.doc.Get(0), func(n *html.Node) bool {
		if matches(n, tag, className) {
			els = append(els, p.doc.FindNodes(n))
		}
		return true
	})
	return els
}

// Emails returns the unique email addresses found in the visible text of
// the page. Returns an empty set if the page holds no document.
func (p *Page) Emails() pagequery.EmailSet {
	if !p.Loaded() {
		return pagequery.EmailSet{}
	}
	return pagequery.FindEmails(p.VisibleText())
}

// VisibleText returns the text nodes of the page that a browser would
// render, joined with single spaces. Returns "" if the page holds no
// document.
func (p *Page) VisibleText() string {
	if !p.Loaded() {
		return ""
	}
	return strings.Join(visibleTexts(p.doc.Get(0)), " ")
}

// matches reports whether n is an element named tag whose class list
// contains className. An empty className matches any element named tag.
// The parser lowercases element names, so tag must be lower case.
func matches(n *html.Node, tag, className string) bool {
	if n.Type != html.ElementNode || n.Data != tag {
		return false
	}
	if className == "" {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == className {
					return true
				}
			}
		}
	}
	return false
}

// walkElements visits the descendants of root in document order. The walk
// stops as soon as fn returns false.
func walkElements(root *html.Node, fn func(*html.Node) bool) bool {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !fn(c) {
			return false
		}
		if !walkElements(c, fn) {
			return false
		}
	}
	return true
}
