package slog

import (
	"context"
	"log/slog"
	"time"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// Ensure LoggingSearcher implements vehiclecomp.Searcher.
var _ vehiclecomp.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with info-level operation logging.
type LoggingSearcher struct {
	next   vehiclecomp.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next vehiclecomp.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// SearchAll delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) SearchAll(ctx context.Context, query string, sources []vehiclecomp.Source) (listings []vehiclecomp.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"sources", len(sources),
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchAll(ctx, query, sources)
}

// Compare delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Compare(ctx context.Context, queries []string) (result *vehiclecomp.ComparisonResult, err error) {
	defer func(begin time.Time) {
		summaries := 0
		if result != nil {
			summaries = len(result.Summaries)
		}
		s.logger.Info("compare",
			"queries", len(queries),
			"summaries", summaries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Compare(ctx, queries)
}
