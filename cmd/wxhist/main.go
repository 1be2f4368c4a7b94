package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"regexp"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wxhist/fs"
	"github.com/fwojciec/wxhist/goquery"
	"github.com/fwojciec/wxhist/history"
	wxhttp "github.com/fwojciec/wxhist/http"
	wxslog "github.com/fwojciec/wxhist/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

var airportPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wxhist"),
		kong.Description("Download a year of daily airport weather history to a delimited text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if !airportPattern.MatchString(cli.Airport) {
		return fmt.Errorf("invalid airport code %q", cli.Airport)
	}
	if cli.Year < 1900 || cli.Year > 9999 {
		return fmt.Errorf("invalid year %d", cli.Year)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcher := wxslog.NewLoggingFetcher(wxhttp.NewFetcher(wxhttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	downloader := &history.Downloader{
		Fetcher: fetcher,
		Parser:  wxslog.NewLoggingTableParser(goquery.NewParser(), logger),
		BaseURL: cli.BaseURL,
	}
	if cli.RPS > 0 {
		downloader.RateLimiter = history.NewDomainLimiter(cli.RPS)
	}

	store := fs.NewFileStore(cli.Dir, fs.FileName(cli.Airport, cli.Year))
	downloader.Store = store

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Downloader: downloader,
		Store:      store,
	}

	cmd := &DownloadCmd{
		Airport: cli.Airport,
		Year:    cli.Year,
		Output:  store.Path(),
	}

	return cmd.Run(deps)
}
