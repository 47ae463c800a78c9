package vehiclecomp

import (
	"context"
	"strings"
)

// Source identifies one classifieds website being scraped.
type Source string

// Supported listing sources.
const (
	SourceRiyasewana Source = "Riyasewana"
	SourceIkman      Source = "Ikman"
	SourcePatpat     Source = "Patpat"
)

// AllSources returns every supported source in scraping priority order.
func AllSources() []Source {
	return []Source{SourceRiyasewana, SourceIkman, SourcePatpat}
}

// ParseSource resolves a case-insensitive source name.
// Returns EINVALID if the name does not match a supported source.
func ParseSource(name string) (Source, error) {
	for _, s := range AllSources() {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", Errorf(EINVALID, "unknown source %q", name)
}

// Listing is one standardized vehicle advertisement. Every field is always
// populated: the standardizer substitutes defaults for missing raw data, so
// no partial records circulate. A price of 0 and a year of 0 both mean
// "unknown", never a legitimate value.
type Listing struct {
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Year      int     `json:"year"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Mileage   string  `json:"mileage"`
	Condition string  `json:"condition"`
	Location  string  `json:"location"`
	URL       string  `json:"url"`
	Source    Source  `json:"source"`
	ImageURL  string  `json:"image_url"`
}

// RawListing holds the untyped string fields pulled from one listing node
// before standardization. Empty fields are permitted here; Standardize fills
// in defaults.
type RawListing struct {
	Title     string
	Price     string
	Year      string
	Make      string
	Model     string
	Mileage   string
	Condition string
	Location  string
	URL       string
	ImageURL  string
	Source    Source
}

// Fetcher retrieves raw HTML from URLs. Implementations enforce their own
// politeness policy (rate limiting, browser-like headers) and apply a fixed
// timeout; they never retry.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor pulls raw listing fields out of one source's result page.
// Implementations are source-specific and tolerate markup variation: a
// malformed node degrades to a skipped record, never a failed call.
type Extractor interface {
	Extract(html string) ([]RawListing, error)
}

// Scraper searches one source for vehicle listings. A failed fetch or an
// empty result page yields an empty slice; the error return exists for
// diagnostics and is contained by the aggregator.
type Scraper interface {
	Source() Source
	Search(ctx context.Context, query string) ([]Listing, error)
}

// Searcher is the aggregation boundary consumed by the conversational
// orchestrator. SearchAll fans a query out to the requested sources
// (nil = all) and returns the merged, deduplicated, price-ranked listings.
// Compare runs SearchAll per query and summarizes price statistics.
// Neither operation fails outright on source errors; the worst case is an
// empty or partial result.
type Searcher interface {
	SearchAll(ctx context.Context, query string, sources []Source) ([]Listing, error)
	Compare(ctx context.Context, queries []string) (*ComparisonResult, error)
}
