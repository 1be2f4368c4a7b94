package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wxhist"
	"github.com/fwojciec/wxhist/history"
)

// Run executes the download command. The store is committed after a
// completed run and aborted when the run stops early.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Downloading %s data for %d\n", c.Airport, c.Year)

	progress := func(e history.ProgressEvent) {
		switch e.Type {
		case history.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s %d rows\n", e.Completed, e.Total, e.Date.Format(time.DateOnly), e.Rows)
		case history.ProgressFailed, history.ProgressUnusable:
			deps.Logger.Warn("skip day",
				"date", e.Date.Format(time.DateOnly),
				"url", e.URL,
				"code", wxhist.ErrorCode(e.Error),
				"err", e.Error,
			)
		}
	}

	result, err := deps.Downloader.DownloadYear(deps.Ctx, c.Airport, c.Year, progress)
	if err != nil {
		_ = deps.Store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := deps.Store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d days to %s (%d failed, %d unusable)\n",
		result.Saved, c.Output, result.Failed, result.Unusable)
	return nil
}
