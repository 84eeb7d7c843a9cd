package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagequery"
	"github.com/fwojciec/pagequery/bloom"
	"github.com/fwojciec/pagequery/crawl"
	"github.com/fwojciec/pagequery/fs"
	"github.com/fwojciec/pagequery/htmltomarkdown"
	pqhttp "github.com/fwojciec/pagequery/http"
	"github.com/fwojciec/pagequery/lipgloss"
	"github.com/fwojciec/pagequery/readability"
	"github.com/fwojciec/pagequery/rod"
	pqslog "github.com/fwojciec/pagequery/slog"
	"github.com/fwojciec/pagequery/sqlite"
	"github.com/fwojciec/pagequery/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher built from flags. Set before calling
	// Run() to drive the commands end to end in tests.
	Fetcher pagequery.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagequery"),
		kong.Description("Fetch a web page and query its elements, text and email addresses"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagequery --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli)
		if err != nil {
			return err
		}
		defer fetcher.Close()
	}
	deps.Fetcher = wrapFetcher(fetcher, cli, logger)

	if cli.Cache != "" {
		db := sqlite.NewDB(cli.Cache)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open page cache: %w", err)
		}
		defer db.Close()

		opts := []crawl.CacheOption{crawl.WithMaxAge(cli.MaxAge)}
		if logger != nil {
			opts = append(opts, crawl.WithCacheLogger(func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			}))
		}
		deps.Fetcher = crawl.NewCachingFetcher(deps.Fetcher, sqlite.NewPageCache(db), opts...)
	}

	deps.Reporter = lipgloss.NewReporter(stderr)
	if logger != nil {
		deps.Reporter = pqslog.NewLoggingReporter(deps.Reporter, logger)
	}

	deps.NewConverter = func(baseURL string) pagequery.Converter {
		return htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL(baseURL))
	}
	deps.Extractors = map[string]pagequery.Extractor{
		EngineTrafilatura: trafilatura.NewExtractor(),
		EngineReadability: readability.NewExtractor(),
	}
	deps.Sitemaps = pqhttp.NewSitemapService(&http.Client{Timeout: cli.Timeout}, cli.UserAgent)
	deps.NewVisitedSet = func(n int) pagequery.VisitedSet {
		return bloom.NewFilter(uint(max(n, 1)), 0.0001)
	}
	deps.NewArticleWriter = func(dir string) pagequery.ArticleWriter {
		return fs.NewWriter(dir)
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the transport selected on the command line.
func newFetcher(cli *CLI) (pagequery.Fetcher, error) {
	if cli.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	}
	return pqhttp.NewFetcher(
		pqhttp.WithTimeout(cli.Timeout),
		pqhttp.WithUserAgent(cli.UserAgent),
	), nil
}

// wrapFetcher layers logging, retries and rate limiting around f. Logging
// sits innermost so every attempt is recorded.
func wrapFetcher(f pagequery.Fetcher, cli *CLI, logger *slog.Logger) pagequery.Fetcher {
	if logger != nil {
		f = pqslog.NewLoggingFetcher(f, logger)
	}
	if cli.Retries > 0 {
		opts := []crawl.RetryOption{crawl.WithRetryDelays(crawl.BackoffDelays(cli.Retries))}
		if logger != nil {
			opts = append(opts, crawl.WithRetryLogger(func(format string, args ...any) {
				logger.Info(fmt.Sprintf(format, args...))
			}))
		}
		f = crawl.NewRetryFetcher(f, opts...)
	}
	if cli.RPS > 0 {
		f = crawl.NewLimitedFetcher(f, crawl.NewDomainLimiter(cli.RPS))
	}
	return f
}
