package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wxhist"
	"github.com/fwojciec/wxhist/history"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Airport string        `arg:"" help:"Airport code, e.g. EFHK"`
	Year    int           `arg:"" help:"Year to download"`
	BaseURL string        `name:"base-url" default:"https://www.wunderground.com" env:"WXHIST_BASE_URL" help:"Site to fetch daily history pages from"`
	Dir     string        `short:"d" default:"." env:"WXHIST_DIR" help:"Directory for the output file"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	RPS     float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables the limit)"`
	Verbose bool          `short:"v" help:"Log every fetch and parse"`
}

// YearDownloader downloads a year of day records.
type YearDownloader interface {
	DownloadYear(ctx context.Context, airport string, year int, progress history.ProgressFunc) (*history.Result, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Downloader YearDownloader
	Store      wxhist.RecordStore
}

// DownloadCmd downloads one airport year.
type DownloadCmd struct {
	Airport string
	Year    int
	Output  string
}
