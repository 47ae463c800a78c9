package goquery

import (
	"github.com/PuerkitoBio/goquery"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.Extractor = (*PatpatExtractor)(nil)

// PatpatExtractor pulls raw listings out of Patpat search result pages.
type PatpatExtractor struct {
	BaseURL     string
	MaxListings int
}

// NewPatpatExtractor creates an extractor with production defaults.
func NewPatpatExtractor() *PatpatExtractor {
	return &PatpatExtractor{
		BaseURL:     "https://patpat.lk",
		MaxListings: DefaultMaxListings,
	}
}

// Extract parses a search results page into raw listings.
func (e *PatpatExtractor) Extract(html string) ([]vehiclecomp.RawListing, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, vehiclecomp.Errorf(vehiclecomp.EINVALID, "patpat: failed to parse HTML: %v", err)
	}

	nodes := selectNodes(doc, "div.vehicle-item", "div.listing-item")

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

func (e *PatpatExtractor) extractNode(node *goquery.Selection) vehiclecomp.RawListing {
	title := firstText(node, "h3", "div.title")

	raw := vehiclecomp.RawListing{
		Title:     title,
		Price:     firstText(node, "span.price", "div.price"),
		Make:      vehiclecomp.MakeFromTitle(title),
		Model:     vehiclecomp.ModelFromTitle(title),
		Condition: "Used",
		Location:  firstText(node, "div.details span.location"),
		URL:       listingURL(node, e.BaseURL),
		ImageURL:  imageURL(node, e.BaseURL),
		Source:    vehiclecomp.SourcePatpat,
	}

	// Year and mileage both live in the free-text details block.
	if details := firstText(node, "div.details"); details != "" {
		raw.Year = findYear(details)
		raw.Mileage = findMileage(details)
	}
	if raw.Year == "" {
		raw.Year = findYear(title)
	}

	return raw
}
