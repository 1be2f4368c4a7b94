// Package history downloads daily history pages for an airport, one day at a
// time, and stores a day record for every page that can be parsed.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/wxhist"
)

// Downloader walks a date range and turns each day's page into a record.
type Downloader struct {
	Fetcher     wxhist.Fetcher
	Parser      wxhist.TableParser
	Store       wxhist.RecordStore
	RateLimiter wxhist.DomainLimiter
	BaseURL     string
}

// Result holds the outcome of a download run.
type Result struct {
	Saved    int
	Failed   int
	Unusable int
}

// ProgressEvent reports progress during a download run.
type ProgressEvent struct {
	Type      ProgressType
	Date      time.Time
	URL       string
	Completed int
	Total     int
	Rows      int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressFailed
	ProgressUnusable
	ProgressFinished
)

// ProgressFunc is a callback for reporting download progress.
type ProgressFunc func(event ProgressEvent)

// DownloadYear downloads every day of year for the airport.
func (d *Downloader) DownloadYear(ctx context.Context, airport string, year int, progress ProgressFunc) (*Result, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return d.DownloadRange(ctx, airport, from, to, progress)
}

// DownloadRange downloads every day from from to to, both inclusive, in
// increasing date order.
//
// A day whose page cannot be fetched or parsed is counted and skipped. The
// run stops only when the context is canceled or the store fails.
func (d *Downloader) DownloadRange(ctx context.Context, airport string, from, to time.Time, progress ProgressFunc) (*Result, error) {
	if airport == "" {
		return nil, wxhist.Errorf(wxhist.EINVALID, "airport code required")
	}
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, wxhist.Errorf(wxhist.EINVALID, "end date %s before start date %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	total := int(to.Sub(from).Hours()/24) + 1
	notify := func(e ProgressEvent) {
		if progress != nil {
			e.Total = total
			progress(e)
		}
	}

	result := &Result{}
	notify(ProgressEvent{Type: ProgressStarted})

	completed := 0
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		url := DayURL(d.baseURL(), airport, day)
		rec, err := d.processDay(ctx, url, day)
		if err != nil && ctx.Err() != nil {
			return result, ctx.Err()
		}
		completed++

		event := ProgressEvent{Date: day, URL: url, Completed: completed, Error: err}
		switch {
		case err == nil:
			if err := d.Store.Save(ctx, rec); err != nil {
				return result, fmt.Errorf("save %s: %w", day.Format(time.DateOnly), err)
			}
			result.Saved++
			event.Type = ProgressSaved
			event.Rows = len(rec.Rows)
		case wxhist.ErrorCode(err) == wxhist.EUNUSABLE:
			result.Unusable++
			event.Type = ProgressUnusable
		default:
			result.Failed++
			event.Type = ProgressFailed
		}
		notify(event)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: completed})
	return result, nil
}

// processDay fetches, parses and assembles a single day.
func (d *Downloader) processDay(ctx context.Context, url string, day time.Time) (*wxhist.DayRecord, error) {
	if d.RateLimiter != nil {
		if err := d.RateLimiter.Wait(ctx, host(url)); err != nil {
			return nil, err
		}
	}

	html, err := d.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	table, err := d.Parser.ParseTable(html)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return wxhist.Assemble(day, table)
}

func (d *Downloader) baseURL() string {
	if d.BaseURL == "" {
		return DefaultBaseURL
	}
	return d.BaseURL
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
