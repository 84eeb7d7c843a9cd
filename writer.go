package pagequery

import "context"

// ArticleWriter persists converted articles.
type ArticleWriter interface {
	// WriteArticle stores the Markdown content of the article found at url.
	WriteArticle(ctx context.Context, url, title, markdown string) error
}
