// Package http provides the rate-limited HTTP implementation of
// vehiclecomp.Fetcher used against server-rendered classifieds sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout bounds one HTTP request end to end.
const DefaultFetchTimeout = 30 * time.Second

// DefaultRequestInterval is the minimum spacing between requests issued by
// one Fetcher instance. Classifieds sites are quick to block aggressive
// clients, so the default is deliberately conservative.
const DefaultRequestInterval = 2 * time.Second

// DefaultUserAgent imitates a desktop Chrome browser. Best effort only: a
// site may still reject the request at the TLS fingerprint level.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements vehiclecomp.Fetcher at compile time.
var _ vehiclecomp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over plain HTTP with browser-like headers and a
// per-instance minimum inter-request interval. Each site scraper owns its
// own Fetcher, so the rate limit is scoped per source. Fetcher is safe for
// concurrent use; the limiter serializes request spacing.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	interval  time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithInterval sets the minimum time between consecutive requests.
// Defaults to DefaultRequestInterval (2s). Zero disables rate limiting.
func WithInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		f.interval = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new rate-limited HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		interval:  DefaultRequestInterval,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	limit := rate.Inf
	if f.interval > 0 {
		limit = rate.Every(f.interval)
	}
	// Burst of 1: the first request proceeds immediately, every subsequent
	// request waits out the remainder of the interval.
	f.limiter = rate.NewLimiter(limit, 1)

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML document at url, blocking first until the
// inter-request interval allows another call. Network errors, timeouts, and
// non-2xx statuses are returned as errors; this layer never retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", vehiclecomp.Errorf(vehiclecomp.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this only drops idle
// connections; the client itself needs no explicit cleanup.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
