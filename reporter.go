package pagequery

// Reporter prints human-facing diagnostics for pages that failed to load.
// It is informational only: the failure has already been absorbed by the
// caller and never propagates further.
type Reporter interface {
	Report(url string, err error)
}

// ReportPrefix is the fixed marker that begins every load diagnostic.
const ReportPrefix = "error loading page:"
