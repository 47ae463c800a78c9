// Package scrape composes fetching, extraction, and standardization into
// per-source site scrapers, and provides the aggregator that fans queries
// out across all of them.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// Ensure SiteScraper implements vehiclecomp.Scraper at compile time.
var _ vehiclecomp.Scraper = (*SiteScraper)(nil)

// URLBuilder turns parsed query components into one source's search URL.
type URLBuilder func(qc vehiclecomp.QueryComponents) string

// SiteScraper searches a single classifieds site. It parses the free-text
// query, builds the source-specific search URL, fetches the results page,
// extracts raw listings, and standardizes them. Any stage failing yields an
// empty result; the error return carries the cause for diagnostics only.
type SiteScraper struct {
	source    vehiclecomp.Source
	buildURL  URLBuilder
	fetcher   vehiclecomp.Fetcher
	extractor vehiclecomp.Extractor

	// RetryDelays, when set, enables backoff retries around the fetch.
	// Nil preserves the single-attempt contract of the fetch layer.
	RetryDelays []time.Duration

	// Logger, when set, records per-call diagnostics.
	Logger *slog.Logger
}

// NewSiteScraper assembles a scraper for one source.
func NewSiteScraper(source vehiclecomp.Source, buildURL URLBuilder, fetcher vehiclecomp.Fetcher, extractor vehiclecomp.Extractor) *SiteScraper {
	return &SiteScraper{
		source:    source,
		buildURL:  buildURL,
		fetcher:   fetcher,
		extractor: extractor,
	}
}

// Source returns the source this scraper searches.
func (s *SiteScraper) Source() vehiclecomp.Source {
	return s.source
}

// Search runs one query against the source and returns standardized
// listings. Fetch and extraction failures come back as an empty slice plus
// the causal error; the aggregator contains the error, so nothing here ever
// aborts a sibling source.
func (s *SiteScraper) Search(ctx context.Context, query string) ([]vehiclecomp.Listing, error) {
	qc := vehiclecomp.ParseQuery(query)
	url := s.buildURL(qc)

	var html string
	var err error
	if len(s.RetryDelays) > 0 {
		html, err = FetchWithBackoff(ctx, url, s.fetcher.Fetch, s.retryLog, s.RetryDelays)
	} else {
		html, err = s.fetcher.Fetch(ctx, url)
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("fetch failed", "source", s.source, "url", url, "err", err)
		}
		return nil, err
	}

	raws, err := s.extractor.Extract(html)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("extract failed", "source", s.source, "url", url, "err", err)
		}
		return nil, err
	}

	listings := make([]vehiclecomp.Listing, 0, len(raws))
	for _, raw := range raws {
		listings = append(listings, vehiclecomp.Standardize(raw))
	}
	return listings, nil
}

// retryLog adapts the scraper's logger to the backoff helper's LogFunc.
func (s *SiteScraper) retryLog(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug("fetch retry", "source", s.source, "detail", fmt.Sprintf(format, args...))
	}
}
