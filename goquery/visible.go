package goquery

import "golang.org/x/net/html"

// hiddenParents are elements whose text children are never rendered.
var hiddenParents = map[string]bool{
	"style":  true,
	"script": true,
	"head":   true,
	"title":  true,
	"meta":   true,
}

// visibleTexts collects, in document order, the data of every text node
// under root whose immediate parent renders content. Comments are not text
// nodes and are skipped along with the rest of the non-text nodes.
func visibleTexts(root *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && isVisible(c) {
				texts = append(texts, c.Data)
			}
			walk(c)
		}
	}
	walk(root)
	return texts
}

func isVisible(n *html.Node) bool {
	if n.Parent == nil || n.Parent.Type == html.DocumentNode {
		return false
	}
	return !hiddenParents[n.Parent.Data]
}
