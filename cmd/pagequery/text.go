package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagequery/goquery"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	page := goquery.Load(deps.Ctx, deps.Fetcher, c.URL, deps.Reporter)
	if !page.Loaded() {
		return nil
	}

	fmt.Fprintln(deps.Stdout, strings.Join(strings.Fields(page.VisibleText()), " "))
	return nil
}
