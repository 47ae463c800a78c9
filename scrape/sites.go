package scrape

import (
	"fmt"
	"net/url"
	"strings"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	vcgoquery "github.com/SudithAmarasinghe/VehicleComp/goquery"
)

// Site base origins. The path and query grammar below mirrors each site's
// live search surface and is brittle to upstream changes; that risk is
// accepted as part of scraping.
const (
	RiyasewanaBaseURL = "https://riyasewana.com"
	IkmanBaseURL      = "https://ikman.lk"
	PatpatBaseURL     = "https://patpat.lk"
)

// NewRiyasewana builds the Riyasewana site scraper around the given fetcher.
func NewRiyasewana(fetcher vehiclecomp.Fetcher) *SiteScraper {
	return NewSiteScraper(vehiclecomp.SourceRiyasewana, RiyasewanaSearchURL, fetcher, vcgoquery.NewRiyasewanaExtractor())
}

// NewIkman builds the Ikman site scraper around the given fetcher.
func NewIkman(fetcher vehiclecomp.Fetcher) *SiteScraper {
	return NewSiteScraper(vehiclecomp.SourceIkman, IkmanSearchURL, fetcher, vcgoquery.NewIkmanExtractor())
}

// NewPatpat builds the Patpat site scraper around the given fetcher.
func NewPatpat(fetcher vehiclecomp.Fetcher) *SiteScraper {
	return NewSiteScraper(vehiclecomp.SourcePatpat, PatpatSearchURL, fetcher, vcgoquery.NewPatpatExtractor())
}

// All builds the full scraper table, one rate-limited fetcher per source so
// request spacing is enforced independently per site.
func All(newFetcher func() vehiclecomp.Fetcher) []vehiclecomp.Scraper {
	return []vehiclecomp.Scraper{
		NewRiyasewana(newFetcher()),
		NewIkman(newFetcher()),
		NewPatpat(newFetcher()),
	}
}

// RiyasewanaSearchURL builds a path-shaped search URL:
// /search/{make}/{model-slug}/{year or start-end}. Segments for unset
// components are omitted; a fully empty query falls back to /search/vehicles.
func RiyasewanaSearchURL(qc vehiclecomp.QueryComponents) string {
	var segments []string

	if qc.Make != "" {
		segments = append(segments, strings.ToLower(qc.Make))
	}
	if slug := vehiclecomp.Slugify(qc.Model); slug != "" {
		segments = append(segments, slug)
	}
	switch {
	case qc.YearStart != 0 && qc.YearEnd != 0:
		segments = append(segments, fmt.Sprintf("%d-%d", qc.YearStart, qc.YearEnd))
	case qc.Year != 0:
		segments = append(segments, fmt.Sprintf("%d", qc.Year))
	}

	if len(segments) == 0 {
		segments = []string{"vehicles"}
	}
	return RiyasewanaBaseURL + "/search/" + strings.Join(segments, "/")
}

// IkmanSearchURL builds a query-parameter search URL under the vehicles
// category.
func IkmanSearchURL(qc vehiclecomp.QueryComponents) string {
	return IkmanBaseURL + "/en/ads/sri-lanka/vehicles?query=" + url.QueryEscape(queryText(qc))
}

// PatpatSearchURL builds a query-parameter search URL.
func PatpatSearchURL(qc vehiclecomp.QueryComponents) string {
	return PatpatBaseURL + "/vehicles?search=" + url.QueryEscape(queryText(qc))
}

// queryText reassembles parsed components into the free-text form the
// query-parameter sites expect.
func queryText(qc vehiclecomp.QueryComponents) string {
	var parts []string
	if qc.Make != "" {
		parts = append(parts, qc.Make)
	}
	if qc.Model != "" {
		parts = append(parts, qc.Model)
	}
	switch {
	case qc.YearStart != 0 && qc.YearEnd != 0:
		parts = append(parts, fmt.Sprintf("%d-%d", qc.YearStart, qc.YearEnd))
	case qc.Year != 0:
		parts = append(parts, fmt.Sprintf("%d", qc.Year))
	}
	return strings.Join(parts, " ")
}
