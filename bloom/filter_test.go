package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/pagequery/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Visit(t *testing.T) {
	t.Parallel()

	t.Run("reports first visit only", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)

		assert.True(t, f.Visit("https://example.com/team"))
		assert.False(t, f.Visit("https://example.com/team"))
		assert.True(t, f.Visit("https://example.com/contact"))
	})

	t.Run("ignores fragments", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)

		assert.True(t, f.Visit("https://example.com/team#ann"))
		assert.False(t, f.Visit("https://example.com/team"))
		assert.False(t, f.Visit("https://example.com/team#bob"))
	})

	t.Run("keeps query strings distinct", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)

		assert.True(t, f.Visit("https://example.com/list?page=1"))
		assert.True(t, f.Visit("https://example.com/list?page=2"))
	})

	t.Run("accepts unparseable URLs verbatim", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.001)

		assert.True(t, f.Visit("http://[::1"))
		assert.False(t, f.Visit("http://[::1"))
	})
}

func TestFilter_ConcurrentVisit(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.0001)

	var wg sync.WaitGroup
	var mu sync.Mutex
	firsts := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if f.Visit(fmt.Sprintf("https://example.com/page%d", j)) {
					mu.Lock()
					firsts++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, firsts)
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := 0; i < 100; i++ {
		f.Visit(fmt.Sprintf("https://example.com/page%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, count, 10)
}
