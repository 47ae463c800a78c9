package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.Extractor = (*RiyasewanaExtractor)(nil)

// RiyasewanaExtractor pulls raw listings out of Riyasewana search result
// pages. Riyasewana renders results as a flat list of "item" boxes with a
// details strip of spans (mileage, year, town) under each title.
type RiyasewanaExtractor struct {
	// BaseURL is the site origin used to absolize relative listing links.
	BaseURL string

	// MaxListings caps how many nodes are extracted per page.
	// Defaults to DefaultMaxListings; zero means unlimited.
	MaxListings int
}

// NewRiyasewanaExtractor creates an extractor with production defaults.
func NewRiyasewanaExtractor() *RiyasewanaExtractor {
	return &RiyasewanaExtractor{
		BaseURL:     "https://riyasewana.com",
		MaxListings: DefaultMaxListings,
	}
}

// Extract parses a search results page into raw listings. Nodes missing a
// title and link are dropped individually; the rest of the page still
// processes.
func (e *RiyasewanaExtractor) Extract(html string) ([]vehiclecomp.RawListing, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, vehiclecomp.Errorf(vehiclecomp.EINVALID, "riyasewana: failed to parse HTML: %v", err)
	}

	nodes := selectNodes(doc, "li.item", "div.item")

	var listings []vehiclecomp.RawListing
	capNodes(nodes, e.MaxListings).Each(func(_ int, node *goquery.Selection) {
		raw := e.extractNode(node)
		if raw.Title == "" && raw.URL == "" {
			return
		}
		listings = append(listings, raw)
	})

	return listings, nil
}

func (e *RiyasewanaExtractor) extractNode(node *goquery.Selection) vehiclecomp.RawListing {
	title := firstText(node, "h2.more a", "h2.title", "a.title", "h2 a")

	raw := vehiclecomp.RawListing{
		Title:     title,
		Price:     firstText(node, "div.boxintxt.b", "div.price", "span.price"),
		Make:      vehiclecomp.MakeFromTitle(title),
		Model:     vehiclecomp.ModelFromTitle(title),
		Condition: "Used",
		URL:       listingURL(node, e.BaseURL),
		ImageURL:  imageURL(node, e.BaseURL),
		Source:    vehiclecomp.SourceRiyasewana,
	}

	// The details strip is a run of short spans: mileage carries a "km"
	// suffix, the year is a bare 4-digit token, and whatever remains is the
	// town.
	node.Find("div.boxtext span, div.details span").Each(func(_ int, span *goquery.Selection) {
		text := strings.TrimSpace(span.Text())
		switch {
		case findMileage(text) != "":
			raw.Mileage = findMileage(text)
		case yearOnlyRE.MatchString(text):
			raw.Year = text
		case isLocation(text):
			raw.Location = text
		}
	})

	if raw.Year == "" {
		raw.Year = findYear(title)
	}

	return raw
}
