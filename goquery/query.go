package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagequery"
)

// Parse is shorthand for Load.
func Parse(ctx context.Context, fetcher pagequery.Fetcher, url string, reporter pagequery.Reporter) *Page {
	return Load(ctx, fetcher, url, reporter)
}

// FindEl is the function form of Page.FindEl.
func FindEl(page *Page, tag, className string) *goquery.Selection {
	return page.FindEl(tag, className)
}

// FindEls is the function form of Page.FindEls.
func FindEls(page *Page, tag, className string) []*goquery.Selection {
	return page.FindEls(tag, className)
}

// Emails is the function form of Page.Emails.
func Emails(page *Page) pagequery.EmailSet {
	return page.Emails()
}

// ExtractText returns the text content of el's subtree with surrounding
// whitespace removed. Script and style text is included. Returns "" for a
// nil or empty selection.
func ExtractText(el *goquery.Selection) string {
	if el == nil || el.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// OuterHTML renders el, including its own tag. Returns "" for a nil or
// empty selection.
func OuterHTML(el *goquery.Selection) (string, error) {
	if el == nil || el.Length() == 0 {
		return "", nil
	}
	return goquery.OuterHtml(el)
}

// Select returns the first matching element as a one-element slice, or every
// match when all is true. Tags listed in pagequery.ShorthandTags are served
// by their Shorthands entry.
func Select(page *Page, tag, className string, all bool) []*goquery.Selection {
	sh, ok := Shorthands[strings.ToLower(tag)]
	if !ok {
		sh = Shorthand{
			First: func(p *Page, c string) *goquery.Selection { return FindEl(p, tag, c) },
			All:   func(p *Page, c string) []*goquery.Selection { return FindEls(p, tag, c) },
		}
	}

	if all {
		return sh.All(page, className)
	}
	if el := sh.First(page, className); el != nil {
		return []*goquery.Selection{el}
	}
	return []*goquery.Selection{}
}
