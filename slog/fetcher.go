// Package slog provides log/slog decorators for the artlot services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artlot"
)

// Ensure LoggingFetcher implements artlot.Fetcher.
var _ artlot.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher, logging each lot page fetch: successes at
// info level with the page size, failures at warn level.
type LoggingFetcher struct {
	next   artlot.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next artlot.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("lot page fetch failed",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		f.logger.Info("lot page fetched",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
