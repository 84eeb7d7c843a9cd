package pagequery

import "slices"

// ShorthandTags lists the element names that get dedicated "find first" and
// "find all" helpers.
var ShorthandTags = []string{"h1", "a", "div", "span", "p", "ul", "li", "table", "tr", "td"}

// IsShorthandTag reports whether tag is one of ShorthandTags.
func IsShorthandTag(tag string) bool {
	return slices.Contains(ShorthandTags, tag)
}
