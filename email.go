package pagequery

import (
	"regexp"
	"slices"
)

// EmailPattern matches the classic local-part@domain.tld address shape.
// It is purely syntactic; nothing is validated beyond the match.
var EmailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailSet is a set of unique email addresses.
type EmailSet map[string]struct{}

// FindEmails scans text and returns every address matching EmailPattern.
func FindEmails(text string) EmailSet {
	set := EmailSet{}
	for _, m := range EmailPattern.FindAllString(text, -1) {
		set.Add(m)
	}
	return set
}

// Add inserts addr into the set.
func (s EmailSet) Add(addr string) {
	s[addr] = struct{}{}
}

// Has reports whether addr is in the set.
func (s EmailSet) Has(addr string) bool {
	_, ok := s[addr]
	return ok
}

// Len returns the number of addresses in the set.
func (s EmailSet) Len() int {
	return len(s)
}

// Merge adds every address of other to the set.
func (s EmailSet) Merge(other EmailSet) {
	for addr := range other {
		s.Add(addr)
	}
}

// Sorted returns the addresses in lexical order.
func (s EmailSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for addr := range s {
		out = append(out, addr)
	}
	slices.Sort(out)
	return out
}
