package scrape

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// DefaultSourceTimeout bounds one source's contribution to a fan-out. A
// source that exceeds it is dropped and logged; siblings are unaffected.
const DefaultSourceTimeout = 60 * time.Second

// Ensure Aggregator implements vehiclecomp.Searcher at compile time.
var _ vehiclecomp.Searcher = (*Aggregator)(nil)

// Aggregator fans a query out to every registered site scraper
// concurrently, merges the partial results tolerating per-source failure,
// deduplicates, and ranks. It holds no mutable state across calls beyond
// the scraper table, so one Aggregator serves concurrent callers.
type Aggregator struct {
	Scrapers []vehiclecomp.Scraper

	// SourceTimeout is the independent deadline for each source task.
	// Defaults to DefaultSourceTimeout (60s) when zero.
	SourceTimeout time.Duration

	// Concurrency bounds the worker pool. Defaults to the number of
	// scrapers when zero, giving every source a worker.
	Concurrency int

	// Logger, when set, records dropped sources and merge statistics.
	Logger *slog.Logger
}

// sourceResult is one source task's outcome, merged at join time so a
// failure is a value, never an escaping fault.
type sourceResult struct {
	source   vehiclecomp.Source
	listings []vehiclecomp.Listing
	err      error
}

// SearchAll runs the query against the requested sources (nil or empty =
// all) and returns the deduplicated, price-ranked union of their results.
// Failed or timed-out sources contribute nothing; SearchAll itself only
// fails on a nil receiver misuse, never on source errors.
func (a *Aggregator) SearchAll(ctx context.Context, query string, sources []vehiclecomp.Source) ([]vehiclecomp.Listing, error) {
	scrapers := a.selectScrapers(sources)
	if len(scrapers) == 0 {
		return []vehiclecomp.Listing{}, nil
	}

	timeout := a.SourceTimeout
	if timeout <= 0 {
		timeout = DefaultSourceTimeout
	}
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = len(scrapers)
	}

	resultCh := make(chan sourceResult, len(scrapers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, scraper := range scrapers {
		scraper := scraper
		g.Go(func() error {
			// Each source carries its own deadline so one slow site
			// cannot starve the others or the caller.
			taskCtx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			listings, err := scraper.Search(taskCtx, query)
			resultCh <- sourceResult{source: scraper.Source(), listings: listings, err: err}
			return nil
		})
	}

	// Worker errors are captured in result values, so Wait cannot fail.
	_ = g.Wait()
	close(resultCh)

	var merged []vehiclecomp.Listing
	for result := range resultCh {
		if result.err != nil {
			if a.Logger != nil {
				a.Logger.Warn("source dropped", "source", result.source, "query", query, "err", result.err)
			}
			continue
		}
		merged = append(merged, result.listings...)
	}

	deduped := Dedup(merged)
	Rank(deduped)

	if a.Logger != nil {
		a.Logger.Debug("search merged",
			"query", query,
			"sources", len(scrapers),
			"raw", len(merged),
			"returned", len(deduped),
		)
	}

	return deduped, nil
}

// Compare runs SearchAll independently for each query and summarizes price
// statistics per query. Queries with no priced listings get a listings
// entry but no summary entry; absence of the summary key signals "no data".
func (a *Aggregator) Compare(ctx context.Context, queries []string) (*vehiclecomp.ComparisonResult, error) {
	result := &vehiclecomp.ComparisonResult{
		Listings:  make(map[string][]vehiclecomp.Listing, len(queries)),
		Summaries: make(map[string]vehiclecomp.QuerySummary, len(queries)),
	}

	for _, query := range queries {
		listings, err := a.SearchAll(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		result.Listings[query] = listings

		if summary, ok := vehiclecomp.Summarize(listings); ok {
			result.Summaries[query] = summary
		}
	}

	return result, nil
}

// selectScrapers filters the scraper table down to the requested sources,
// preserving table order. Nil or empty means all.
func (a *Aggregator) selectScrapers(sources []vehiclecomp.Source) []vehiclecomp.Scraper {
	if len(sources) == 0 {
		return a.Scrapers
	}
	requested := make(map[vehiclecomp.Source]bool, len(sources))
	for _, s := range sources {
		requested[s] = true
	}
	var selected []vehiclecomp.Scraper
	for _, scraper := range a.Scrapers {
		if requested[scraper.Source()] {
			selected = append(selected, scraper)
		}
	}
	return selected
}

// Dedup collapses duplicate listings on the identity key (lower-cased
// trimmed title, integer-truncated price). Listings with price 0 are
// discarded outright: a zero price marks unparsed data, not a free car.
// First occurrence of a key wins, including across sources; re-titled
// duplicates on different sites intentionally survive (exact-match only).
// Dedup is idempotent.
func Dedup(listings []vehiclecomp.Listing) []vehiclecomp.Listing {
	seen := make(map[uint64]bool, len(listings))
	unique := make([]vehiclecomp.Listing, 0, len(listings))

	for _, l := range listings {
		if l.Price <= 0 {
			continue
		}
		key := dedupKey(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, l)
	}
	return unique
}

// dedupKey hashes the normalized identity tuple.
func dedupKey(l vehiclecomp.Listing) uint64 {
	title := strings.ToLower(strings.TrimSpace(l.Title))
	return xxhash.Sum64String(title + "\x00" + strconv.FormatInt(int64(l.Price), 10))
}

// Rank sorts listings in place by ascending price, ties broken by
// descending year so newer vehicles surface first at the same price.
func Rank(listings []vehiclecomp.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		if listings[i].Price != listings[j].Price {
			return listings[i].Price < listings[j].Price
		}
		return listings[i].Year > listings[j].Year
	})
}
