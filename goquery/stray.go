package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// stripStrayText drops text that lies outside the root element: text before
// the first start tag and text after the </html> end tag. Such text belongs
// to the document itself, but the HTML5 parser would move it into <body>.
func stripStrayText(rawHTML string) string {
	z := html.NewTokenizer(strings.NewReader(rawHTML))

	var b strings.Builder
	b.Grow(len(rawHTML))
	opened, closed := false, false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			if !opened || closed {
				continue
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			opened = true
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "html" {
				closed = true
			}
		}
		b.Write(z.Raw())
	}
}
