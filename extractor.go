package pagequery

// Article holds the main content pulled out of a page.
type Article struct {
	// Title comes from page metadata (title tag, og:title, JSON+LD).
	Title string

	// ContentHTML is the main content with navigation, footers and
	// sidebars removed.
	ContentHTML string
}

// Extractor pulls the main content out of a full HTML page.
type Extractor interface {
	Extract(html string) (*Article, error)
}
