package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "simple path", url: "https://example.com/team/ann", want: "example.com/team/ann.md"},
		{name: "html extension replaced", url: "https://example.com/team/ann.html", want: "example.com/team/ann.md"},
		{name: "htm extension replaced", url: "https://example.com/about.htm", want: "example.com/about.md"},
		{name: "trailing slash becomes index", url: "https://example.com/news/", want: "example.com/news/index.md"},
		{name: "root becomes index", url: "https://example.com/", want: "example.com/index.md"},
		{name: "root without slash", url: "https://example.com", want: "example.com/index.md"},
		{name: "ignores query and fragment", url: "https://example.com/a?x=1#top", want: "example.com/a.md"},
		{name: "keeps port", url: "http://localhost:8080/a", want: "localhost:8080/a.md"},
		{name: "dot segments stay inside host", url: "https://example.com/../../etc/passwd", want: "example.com/etc/passwd.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := fs.URLToPath("/relative/path")

		assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
	})

	for _, raw := range []string{
		"http://../etc/x",
		"http://./x",
		"http://..:8080/x",
		`http://a\..\..\x/y`,
	} {
		t.Run("rejects host escaping output directory "+raw, func(t *testing.T) {
			t.Parallel()

			_, err := fs.URLToPath(raw)

			assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
		})
	}
}

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	saved := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	t.Run("includes title", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatArticle("https://example.com/a", "Launch", "Body text", saved)

		assert.Equal(t, "---\nsource: https://example.com/a\ntitle: Launch\nsaved: 2026-10-16\n---\n\nBody text\n", got)
	})

	t.Run("omits empty title", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatArticle("https://example.com/a", "", "Body\n", saved)

		assert.Equal(t, "---\nsource: https://example.com/a\nsaved: 2026-10-16\n---\n\nBody\n", got)
	})
}

func TestWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes file with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteArticle(context.Background(), "https://example.com/news/launch.html", "Launch", "We launched.")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "example.com", "news", "launch.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://example.com/news/launch.html\n")
		assert.Contains(t, string(content), "title: Launch\n")
		assert.Contains(t, string(content), "\n---\n\nWe launched.\n")
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.WriteArticle(ctx, "https://example.com/a", "", "first"))
		require.NoError(t, w.WriteArticle(ctx, "https://example.com/a", "", "second"))

		content, err := os.ReadFile(filepath.Join(dir, "example.com", "a.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "second")
		assert.NotContains(t, string(content), "first")
	})

	t.Run("never writes outside base directory", func(t *testing.T) {
		t.Parallel()

		parent := t.TempDir()
		dir := filepath.Join(parent, "out")
		w := fs.NewWriter(dir)

		err := w.WriteArticle(context.Background(), "http://../escaped/x", "", "x")

		assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
		_, statErr := os.Stat(filepath.Join(parent, "escaped"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("rejects invalid URL", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteArticle(context.Background(), "http://[::1", "", "x")

		assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.WriteArticle(ctx, "https://example.com/a", "", "x")

		assert.ErrorIs(t, err, context.Canceled)
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})
}
