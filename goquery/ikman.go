package goquery

import (
	"github.com/PuerkitoBio/goquery"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

var _ vehiclecomp.Extractor = (*IkmanExtractor)(nil)

// IkmanExtractor pulls raw listings out of Ikman search result pages.
// Ikman is a React app with hashed CSS-module class names, so the primary
// selector pins the current hash and the fallback covers the plain "card"
// markup served to non-JS clients.
type IkmanExtractor struct {
	BaseURL     string
	MaxListings int
}

// NewIkmanExtractor creates an extractor with production defaults.
func NewIkmanExtractor() *IkmanExtractor {
	return &IkmanExtractor{
		BaseURL:     "https://ikman.lk",
		MaxListings: DefaultMaxListings,
	}
}

// Extract parses a search results page into raw listings.
func (e *IkmanExtractor) Extract(html string) ([]vehiclecomp.RawListing, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, vehiclecomp.Errorf(vehiclecomp.EINVALID, "ikman: failed to parse HTML: %v", err)
	}

	nodes := selectNodes(doc, "li.normal--2QYVk", "div.card")

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

func (e *IkmanExtractor) extractNode(node *goquery.Selection) vehiclecomp.RawListing {
	title := firstText(node, "h2", "a.card-title")

	raw := vehiclecomp.RawListing{
		Title:     title,
		Price:     firstText(node, "div.price--3SnqI", "span.price"),
		Make:      vehiclecomp.MakeFromTitle(title),
		Model:     vehiclecomp.ModelFromTitle(title),
		Condition: "Used",
		Location:  firstText(node, "div.description--2-ez3"),
		URL:       listingURL(node, e.BaseURL),
		ImageURL:  imageURL(node, e.BaseURL),
		Source:    vehiclecomp.SourceIkman,
	}

	// Ikman cards carry the year in the title and, when present, the
	// mileage in the free-text description block.
	raw.Year = findYear(title)
	if desc := firstText(node, "div.description"); desc != "" {
		raw.Mileage = findMileage(desc)
	}

	return raw
}
