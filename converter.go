package pagequery

// Converter converts HTML fragments to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, typically an element's outer HTML
	// or an Article's content, into Markdown.
	Convert(html string) (string, error)
}
