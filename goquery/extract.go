// Package goquery provides the per-source vehiclecomp.Extractor
// implementations. Each extractor knows the listing-node selectors for one
// classifieds site and tolerates markup drift: a fallback selector covers
// layout changes, and a malformed node degrades to a skipped record rather
// than failing the whole page.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxListings caps how many listing nodes one extraction processes.
const DefaultMaxListings = 10

var (
	mileageRE  = regexp.MustCompile(`(?i)(\d[\d,]*)\s*km`)
	yearRE     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	yearOnlyRE = regexp.MustCompile(`^(?:19|20)\d{2}$`)
	digitRunRE = regexp.MustCompile(`^[\d,.\s]+$`)
)

// parseDoc parses raw HTML into a queryable document.
func parseDoc(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// selectNodes tries each listing-node selector in order and returns the
// matches of the first one that yields any nodes. Results from different
// selectors are never merged.
func selectNodes(doc *goquery.Document, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		nodes := doc.Find(sel)
		if nodes.Length() > 0 {
			return nodes
		}
	}
	return doc.Find(selectors[0]) // empty selection
}

// firstText returns the trimmed text of the first candidate selector that
// matches a non-empty element under node.
func firstText(node *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(node.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// listingURL returns the absolute URL of the node's first link, resolving
// relative hrefs against the site's base origin.
func listingURL(node *goquery.Selection, base string) string {
	href, ok := node.Find("a[href]").First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	return absolize(base, href)
}

// imageURL returns the node's first image source, preferring src over the
// lazy-load attribute sites use for below-the-fold cards. Relative sources
// are resolved against the site's base origin.
func imageURL(node *goquery.Selection, base string) string {
	img := node.Find("img").First()
	if src, ok := img.Attr("src"); ok && src != "" {
		return absolize(base, src)
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return absolize(base, src)
	}
	return ""
}

// absolize resolves href against the base origin. Already-absolute hrefs
// pass through untouched; unparsable ones come back empty.
func absolize(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(ref).String()
}

// findMileage extracts a "digits km" fragment from free detail text.
func findMileage(text string) string {
	return mileageRE.FindString(text)
}

// findYear extracts the first 4-digit year token from free detail text.
func findYear(text string) string {
	return yearRE.FindString(text)
}

// isLocation reports whether a short detail fragment looks like a place
// name: not empty, not a mileage, not a bare year, not a digit run.
func isLocation(text string) bool {
	if text == "" {
		return false
	}
	if mileageRE.MatchString(text) || yearOnlyRE.MatchString(text) || digitRunRE.MatchString(text) {
		return false
	}
	return true
}

// capNodes limits the selection to at most max nodes. Zero means unlimited.
func capNodes(nodes *goquery.Selection, max int) *goquery.Selection {
	if max <= 0 || nodes.Length() <= max {
		return nodes
	}
	return nodes.Slice(0, max)
}
