package vehiclecomp

import (
	"strconv"
	"strings"
)

// Field defaults substituted by Standardize when raw data is missing.
const (
	DefaultMileage   = "N/A"
	DefaultCondition = "N/A"
	DefaultLocation  = "N/A"
)

// currencyTokens are stripped from raw price text before numeric parsing.
// Order matters: "rs." must be removed before "rs".
var currencyTokens = []string{"rs.", "rs", "lkr", ","}

// Standardize normalizes one raw listing into the canonical Listing shape.
// It never fails: unparsable prices and years become 0, and absent text
// fields receive fixed defaults, so the result is always fully populated.
func Standardize(raw RawListing) Listing {
	return Listing{
		Title:     strings.TrimSpace(raw.Title),
		Price:     ParsePrice(raw.Price),
		Year:      ParseYear(raw.Year),
		Make:      raw.Make,
		Model:     raw.Model,
		Mileage:   defaultIfEmpty(raw.Mileage, DefaultMileage),
		Condition: defaultIfEmpty(raw.Condition, DefaultCondition),
		Location:  defaultIfEmpty(raw.Location, DefaultLocation),
		URL:       raw.URL,
		Source:    raw.Source,
		ImageURL:  raw.ImageURL,
	}
}

// ParsePrice extracts a numeric price from free text like "Rs. 4,500,000".
// Currency tokens and thousands separators are stripped; anything that still
// fails to parse as a non-negative decimal yields 0, the "unknown" marker.
func ParsePrice(text string) float64 {
	cleaned := strings.ToLower(text)
	for _, token := range currencyTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// ParseYear extracts the first plausible 4-digit year (19xx or 20xx) from
// free text. Returns 0 when no year is found.
func ParseYear(text string) int {
	match := yearRE.FindString(text)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

func defaultIfEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
