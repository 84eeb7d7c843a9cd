package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagequery"
)

// Shorthand is a pair of queries with the tag name bound.
type Shorthand struct {
	First func(page *Page, className string) *goquery.Selection
	All   func(page *Page, className string) []*goquery.Selection
}

// Shorthands maps each of pagequery.ShorthandTags to its bound queries.
var Shorthands = newShorthands(pagequery.ShorthandTags)

func newShorthands(tags []string) map[string]Shorthand {
	m := make(map[string]Shorthand, len(tags))
	for _, tag := range tags {
		m[tag] = Shorthand{
			First: func(page *Page, className string) *goquery.Selection {
				return FindEl(page, tag, className)
			},
			All: func(page *Page, className string) []*goquery.Selection {
				return FindEls(page, tag, className)
			},
		}
	}
	return m
}

// FindH1 returns the first <h1> element, optionally filtered by class.
func FindH1(page *Page, className string) *goquery.Selection {
	return FindEl(page, "h1", className)
}

// FindH1s returns all <h1> elements, optionally filtered by class.
func FindH1s(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "h1", className)
}

// FindA returns the first <a> element, optionally filtered by class.
func FindA(page *Page, className string) *goquery.Selection {
	return FindEl(page, "a", className)
}

// FindAs returns all <a> elements, optionally filtered by class.
func FindAs(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "a", className)
}

// FindDiv returns the first <div> element, optionally filtered by class.
func FindDiv(page *Page, className string) *goquery.Selection {
	return FindEl(page, "div", className)
}

// FindDivs returns all <div> elements, optionally filtered by class.
func FindDivs(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "div", className)
}

// FindSpan returns the first <span> element, optionally filtered by class.
func FindSpan(page *Page, className string) *goquery.Selection {
	return FindEl(page, "span", className)
}

// FindSpans returns all <span> elements, optionally filtered by class.
func FindSpans(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "span", className)
}

// FindP returns the first <p> element, optionally filtered by class.
func FindP(page *Page, className string) *goquery.Selection {
	return FindEl(page, "p", className)
}

// FindPs returns all <p> elements, optionally filtered by class.
func FindPs(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "p", className)
}

// FindUl returns the first <ul> element, optionally filtered by class.
func FindUl(page *Page, className string) *goquery.Selection {
	return FindEl(page, "ul", className)
}

// FindUls returns all <ul> elements, optionally filtered by class.
func FindUls(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "ul", className)
}

// FindLi returns the first <li> element, optionally filtered by class.
func FindLi(page *Page, className string) *goquery.Selection {
	return FindEl(page, "li", className)
}

// FindLis returns all <li> elements, optionally filtered by class.
func FindLis(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "li", className)
}

// FindTable returns the first <table> element, optionally filtered by class.
func FindTable(page *Page, className string) *goquery.Selection {
	return FindEl(page, "table", className)
}

// FindTables returns all <table> elements, optionally filtered by class.
func FindTables(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "table", className)
}

// FindTr returns the first <tr> element, optionally filtered by class.
func FindTr(page *Page, className string) *goquery.Selection {
	return FindEl(page, "tr", className)
}

// FindTrs returns all <tr> elements, optionally filtered by class.
func FindTrs(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "tr", className)
}

// FindTd returns the first <td> element, optionally filtered by class.
func FindTd(page *Page, className string) *goquery.Selection {
	return FindEl(page, "td", className)
}

// FindTds returns all <td> elements, optionally filtered by class.
func FindTds(page *Page, className string) []*goquery.Selection {
	return FindEls(page, "td", className)
}
