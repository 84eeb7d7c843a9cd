package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagequery"
)

// Main-content extraction engines for the article command.
const (
	EngineTrafilatura = "trafilatura"
	EngineReadability = "readability"
)

// Output formats for the find command.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Fetcher      pagequery.Fetcher
	Reporter     pagequery.Reporter
	NewConverter func(baseURL string) pagequery.Converter
	Extractors   map[string]pagequery.Extractor
	Sitemaps     pagequery.SitemapService

	// NewVisitedSet returns an empty set sized for n URLs. When nil, URLs
	// are not deduplicated.
	NewVisitedSet func(n int) pagequery.VisitedSet

	// NewArticleWriter returns a writer storing articles under dir.
	NewArticleWriter func(dir string) pagequery.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `name:"user-agent" default:"pagequery/1.0" help:"User-Agent header for HTTP requests"`
	Render    bool          `short:"r" help:"Render pages in headless Chrome before querying"`
	Retries   int           `default:"0" help:"Retry unavailable pages this many times with backoff"`
	RPS       float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables limiting)"`
	Cache     string        `type:"path" help:"Cache fetched pages in this SQLite database"`
	MaxAge    time.Duration `name:"max-age" default:"24h" help:"Refetch cached pages older than this (0 keeps them forever)"`
	Verbose   bool          `short:"v" help:"Log fetches to stderr"`

	Find    FindCmd    `cmd:"" help:"Print elements matching a tag and optional class"`
	Emails  EmailsCmd  `cmd:"" help:"Harvest email addresses from the visible text of pages"`
	Text    TextCmd    `cmd:"" help:"Print the visible text of a page"`
	Article ArticleCmd `cmd:"" help:"Print the main content of a page as Markdown"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Tag    string `arg:"" help:"Element name, e.g. h1, a, div"`
	Class  string `short:"c" help:"Only elements carrying this class"`
	All    bool   `short:"a" help:"Print every match instead of the first"`
	Format string `short:"f" enum:"text,html,markdown" default:"text" help:"Output format (text, html, markdown)"`
}

// EmailsCmd is the "emails" subcommand.
type EmailsCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to scan"`
	Sitemap     bool     `short:"s" help:"Treat each URL as a site and scan the pages its sitemap lists"`
	Concurrency int      `short:"c" default:"4" help:"Pages loaded at once"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Engine string `short:"e" enum:"trafilatura,readability" default:"trafilatura" help:"Extraction engine (trafilatura, readability)"`
	Out    string `short:"o" type:"path" help:"Write the article as a Markdown file under this directory instead of stdout"`
}
