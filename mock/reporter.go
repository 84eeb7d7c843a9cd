package mock

import "github.com/fwojciec/pagequery"

var _ pagequery.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of pagequery.Reporter.
type Reporter struct {
	ReportFn func(url string, err error)
}

func (r *Reporter) Report(url string, err error) {
	r.ReportFn(url, err)
}
