// Package redis provides a Redis-backed result cache for searchers.
// Scraping three sites per query is slow and rate-limited; caching lets
// repeated queries within the TTL skip the network entirely.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// DefaultTTL is how long a cached search result stays fresh. Listings churn
// on the scale of hours, not seconds.
const DefaultTTL = 15 * time.Minute

// keyPrefix namespaces cache keys so the instance can share a Redis DB.
const keyPrefix = "vehiclecomp:search:"

// Ensure CachingSearcher implements vehiclecomp.Searcher at compile time.
var _ vehiclecomp.Searcher = (*CachingSearcher)(nil)

// NewClient creates a Redis client with production timeouts.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// CachingSearcher decorates a Searcher with a Redis read-through cache on
// SearchAll. Cache failures degrade to a live search; a broken Redis never
// breaks search itself. Compare is never cached because it fans out to
// multiple queries whose results are cached individually underneath.
type CachingSearcher struct {
	searcher vehiclecomp.Searcher
	client   *redis.Client

	// TTL bounds cached result freshness. Defaults to DefaultTTL when zero.
	TTL time.Duration

	// Logger, when set, records cache faults at debug level.
	Logger *slog.Logger
}

// NewCachingSearcher decorates searcher with the Redis cache behind client.
func NewCachingSearcher(searcher vehiclecomp.Searcher, client *redis.Client) *CachingSearcher {
	return &CachingSearcher{searcher: searcher, client: client}
}

// SearchAll returns cached listings when the key is fresh, otherwise runs a
// live search and stores the result.
func (s *CachingSearcher) SearchAll(ctx context.Context, query string, sources []vehiclecomp.Source) ([]vehiclecomp.Listing, error) {
	key := cacheKey(query, sources)

	if payload, err := s.client.Get(ctx, key).Result(); err == nil {
		var listings []vehiclecomp.Listing
		if err := json.Unmarshal([]byte(payload), &listings); err == nil {
			return listings, nil
		}
		// A corrupt entry falls through to a live search and gets rewritten.
		s.logFault("cache entry corrupt", key, err)
	} else if err != redis.Nil {
		s.logFault("cache read failed", key, err)
	}

	listings, err := s.searcher.SearchAll(ctx, query, sources)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(listings); err == nil {
		ttl := s.TTL
		if ttl <= 0 {
			ttl = DefaultTTL
		}
		if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
			s.logFault("cache write failed", key, err)
		}
	}

	return listings, nil
}

// Compare delegates to the wrapped searcher.
func (s *CachingSearcher) Compare(ctx context.Context, queries []string) (*vehiclecomp.ComparisonResult, error) {
	return s.searcher.Compare(ctx, queries)
}

func (s *CachingSearcher) logFault(msg, key string, err error) {
	if s.Logger != nil {
		s.Logger.Debug(msg, "key", key, "err", err)
	}
}

// cacheKey derives a stable key from the normalized query and the sorted
// source restriction, so "Toyota Aqua" and "toyota aqua" share an entry.
func cacheKey(query string, sources []vehiclecomp.Source) string {
	parts := []string{strings.ToLower(strings.TrimSpace(query))}

	if len(sources) > 0 {
		names := make([]string, 0, len(sources))
		for _, src := range sources {
			names = append(names, strings.ToLower(string(src)))
		}
		sort.Strings(names)
		parts = append(parts, names...)
	}

	return keyPrefix + strings.Join(parts, "|")
}
