package mock

import (
	"context"

	"github.com/fwojciec/pagequery"
)

var _ pagequery.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of pagequery.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, url, title, markdown string) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, url, title, markdown string) error {
	return w.WriteArticleFn(ctx, url, title, markdown)
}
