package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagequery.Converter at compile time.
var _ pagequery.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts heading element", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1 class="title">Products</h1>`)

		require.NoError(t, err)
		assert.Equal(t, "# Products", md)
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Write to <a href="mailto:team@example.com">the team</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the team](mailto:team@example.com)")
	})

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL("https://example.com"))
		md, err := conv.Convert(`<a href="/contact">Contact</a>`)

		require.NoError(t, err)
		assert.Contains(t, md, "(https://example.com/contact)")
	})

	t.Run("converts list items", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Email</th></tr></thead>
<tbody><tr><td>Ada</td><td>ada@example.com</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Name")
		assert.Contains(t, md, "ada@example.com")
	})

	t.Run("returns invalid for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
	})
}
