// Package bloom deduplicates page URLs with a Bloom filter.
package bloom

import (
	"net/url"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pagequery"
)

var _ pagequery.VisitedSet = (*Filter)(nil)

// Filter is a pagequery.VisitedSet backed by a Bloom filter. It is safe for
// concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Visit implements pagequery.VisitedSet. URLs differing only in their
// fragment count as the same page.
func (f *Filter) Visit(rawURL string) bool {
	key := pageKey(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.f.TestAndAddString(key)
}

// EstimatedCount returns the approximate number of URLs visited.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

func pageKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
