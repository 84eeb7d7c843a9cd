package readability_test

import (
	"testing"

	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagequery.Extractor at compile time.
var _ pagequery.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, pagequery.EINVALID, pagequery.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Contact</title></head>
<body><article><p>Write to us.</p></article></body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Contact", result.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Team</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/jobs">Jobs Nav Link</a></nav>
<article><p>Our team of twelve engineers maintains the widget firmware and answers support questions every weekday.</p></article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "twelve engineers")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
}
