package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wxhist"
)

// Ensure LoggingTableParser implements wxhist.TableParser.
var _ wxhist.TableParser = (*LoggingTableParser)(nil)

// LoggingTableParser wraps a TableParser with debug logging.
type LoggingTableParser struct {
	next   wxhist.TableParser
	logger *slog.Logger
}

// NewLoggingTableParser creates a new LoggingTableParser.
func NewLoggingTableParser(next wxhist.TableParser, logger *slog.Logger) *LoggingTableParser {
	return &LoggingTableParser{next: next, logger: logger}
}

// ParseTable delegates to the wrapped parser and logs the table shape.
func (p *LoggingTableParser) ParseTable(html string) (table *wxhist.Table, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Debug("parse table",
				"code", wxhist.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		p.logger.Debug("parse table",
			"columns", len(table.Header),
			"rows", len(table.Rows),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ParseTable(html)
}
