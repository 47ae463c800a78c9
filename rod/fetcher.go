// Package rod provides a browser-backed Fetcher for sites that render their
// listing cards client-side. Ikman's result grid is built by JavaScript, so
// a plain HTTP fetch sees an empty shell; driving headless Chrome yields the
// same markup a buyer's browser would.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/time/rate"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	vchttp "github.com/SudithAmarasinghe/VehicleComp/http"
)

// Ensure Fetcher implements vehiclecomp.Fetcher at compile time.
var _ vehiclecomp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation. Like the
// plain HTTP fetcher it spaces requests out with a rate limiter, since the
// classifieds sites throttle rendered traffic just the same.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithInterval sets the minimum spacing between page loads. Zero disables
// rate limiting.
func WithInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		if d <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		f.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithUserAgent overrides the browser's reported user agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f := &Fetcher{
		browser:   browser,
		limiter:   rate.NewLimiter(rate.Every(vchttp.DefaultRequestInterval), 1),
		userAgent: vchttp.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		override := &proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(override); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// WaitLoad fires on the load event; the card grid scripts run before it.
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
