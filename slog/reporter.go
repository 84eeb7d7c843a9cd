package slog

import (
	"log/slog"

	"github.com/fwojciec/pagequery"
)

// Ensure LoggingReporter implements pagequery.Reporter.
var _ pagequery.Reporter = (*LoggingReporter)(nil)

// LoggingReporter records load failures as structured log entries before
// handing them to the wrapped reporter.
type LoggingReporter struct {
	next   pagequery.Reporter
	logger *slog.Logger
}

// NewLoggingReporter creates a new LoggingReporter. next may be nil.
func NewLoggingReporter(next pagequery.Reporter, logger *slog.Logger) *LoggingReporter {
	return &LoggingReporter{next: next, logger: logger}
}

// Report logs the failure and delegates to the wrapped reporter.
func (r *LoggingReporter) Report(url string, err error) {
	r.logger.Warn("page unavailable",
		"url", url,
		"code", pagequery.ErrorCode(err),
		"err", err,
	)
	if r.next != nil {
		r.next.Report(url, err)
	}
}
