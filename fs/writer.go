// Package fs stores converted articles as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/pagequery"
)

// URLToPath maps a page URL to a slash-separated path relative to the output
// directory: host, then the URL path with any .html/.htm extension replaced
// by .md. Directory URLs map to index.md.
//
//	https://example.com/team/ann.html → example.com/team/ann.md
//	https://example.com/news/         → example.com/news/index.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagequery.Errorf(pagequery.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", pagequery.Errorf(pagequery.EINVALID, "URL without host: %q", rawURL)
	}
	if h := u.Hostname(); h == "." || h == ".." || strings.ContainsAny(u.Host, `/\`) {
		return "", pagequery.Errorf(pagequery.EINVALID, "unsafe host in URL %q", rawURL)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	} else {
		p = strings.TrimSuffix(strings.TrimSuffix(p, ".html"), ".htm")
	}

	// Clean against the root so ".." segments cannot leave the host directory.
	return u.Host + path.Clean("/"+p) + ".md", nil
}

// FormatArticle renders markdown with YAML frontmatter naming its source.
func FormatArticle(sourceURL, title, markdown string, saved time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: " + sourceURL + "\n")
	if title != "" {
		b.WriteString("title: " + title + "\n")
	}
	b.WriteString("saved: " + saved.Format("2006-01-02") + "\n")
	b.WriteString("---\n\n")
	b.WriteString(markdown)
	if !strings.HasSuffix(markdown, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// Ensure Writer implements pagequery.ArticleWriter at compile time.
var _ pagequery.ArticleWriter = (*Writer)(nil)

// Writer writes articles as Markdown files under a base directory.
type Writer struct {
	baseDir string
	now     func() time.Time
}

// NewWriter creates a new Writer that writes under baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, now: time.Now}
}

// WriteArticle writes the article to baseDir/URLToPath(url), creating parent
// directories and replacing an existing file.
func (w *Writer) WriteArticle(ctx context.Context, url, title, markdown string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := URLToPath(url)
	if err != nil {
		return err
	}
	full := filepath.Join(w.baseDir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(FormatArticle(url, title, markdown, w.now())), 0644)
}
