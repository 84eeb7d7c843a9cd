// Package lipgloss renders console diagnostics with
// github.com/charmbracelet/lipgloss.
package lipgloss

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/pagequery"
)

// Ensure Reporter implements pagequery.Reporter at compile time.
var _ pagequery.Reporter = (*Reporter)(nil)

// Reporter writes one line per failed page load. The line is red and bold
// when w is a terminal that supports color, and plain text otherwise.
type Reporter struct {
	mu    sync.Mutex
	w     io.Writer
	style lipgloss.Style
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:     w,
		style: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Report prints the diagnostic for url.
func (r *Reporter) Report(url string, err error) {
	line := fmt.Sprintf("%s %s: %s", pagequery.ReportPrefix, url, describe(err))

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, r.style.Render(line))
}

// describe prefers the human-readable message of application errors.
func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	if pagequery.ErrorCode(err) != pagequery.EINTERNAL {
		return pagequery.ErrorMessage(err)
	}
	return err.Error()
}
