package pagequery

// VisitedSet records URLs so each page is loaded once per run.
type VisitedSet interface {
	// Visit records url and reports whether it was new. Implementations may
	// report a new URL as already visited with a small probability.
	Visit(url string) bool
}
