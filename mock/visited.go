package mock

import "github.com/fwojciec/pagequery"

var _ pagequery.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is a mock implementation of pagequery.VisitedSet.
type VisitedSet struct {
	VisitFn func(url string) bool
}

func (s *VisitedSet) Visit(url string) bool {
	return s.VisitFn(url)
}
