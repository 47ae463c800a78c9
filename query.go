package vehiclecomp

import (
	"regexp"
	"strings"
)

// knownMakes lists the manufacturer names recognized in queries and listing
// titles, in match priority order. First match wins, so "Mercedes" comes
// before "Benz".
var knownMakes = []string{
	"Toyota", "Honda", "Nissan", "Suzuki", "Mitsubishi", "Mazda",
	"BMW", "Mercedes", "Benz", "Audi", "Hyundai", "KIA", "Volkswagen",
}

var (
	yearRangeRE = regexp.MustCompile(`\b((?:19|20)\d{2})\s*-\s*((?:19|20)\d{2})\b`)
	yearRE      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	nonSlugRE   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunRE = regexp.MustCompile(`-{2,}`)
	spaceRunRE  = regexp.MustCompile(`\s+`)
)

// QueryComponents is the parsed search intent used to build one
// source-specific search URL. Either Year or the YearStart/YearEnd pair is
// set, never both; zero means "not specified".
type QueryComponents struct {
	Make      string
	Model     string
	Year      int
	YearStart int
	YearEnd   int
}

// ParseQuery splits a free-text query like "Toyota Aqua 2015-2018" into
// make, model, and year (or year range) components. The make is the first
// known manufacturer name found in the query; the model is whatever remains
// after removing the make and any year tokens.
func ParseQuery(query string) QueryComponents {
	var qc QueryComponents

	for _, make := range knownMakes {
		if containsFold(query, make) {
			qc.Make = make
			break
		}
	}

	if m := yearRangeRE.FindStringSubmatch(query); m != nil {
		qc.YearStart = ParseYear(m[1])
		qc.YearEnd = ParseYear(m[2])
	} else if y := yearRE.FindString(query); y != "" {
		qc.Year = ParseYear(y)
	}

	model := query
	for _, make := range knownMakes {
		model = removeFold(model, make)
	}
	model = yearRangeRE.ReplaceAllString(model, "")
	model = yearRE.ReplaceAllString(model, "")
	model = strings.Trim(spaceRunRE.ReplaceAllString(model, " "), " -")
	qc.Model = model

	return qc
}

// MakeFromTitle returns the first known manufacturer name appearing in the
// listing title, or an empty string if none match.
func MakeFromTitle(title string) string {
	for _, make := range knownMakes {
		if containsFold(title, make) {
			return make
		}
	}
	return ""
}

// ModelFromTitle strips known manufacturer names and year tokens from the
// title and returns the trimmed remainder. No further validation is done;
// the result is free text.
func ModelFromTitle(title string) string {
	model := title
	for _, make := range knownMakes {
		model = removeFold(model, make)
	}
	model = yearRE.ReplaceAllString(model, "")
	return strings.TrimSpace(spaceRunRE.ReplaceAllString(model, " "))
}

// Slugify formats a model name for use in a URL path segment: lower-cased,
// whitespace replaced with hyphens, everything outside [a-z0-9-] stripped,
// hyphen runs collapsed. "Wagon R+" becomes "wagon-r".
func Slugify(model string) string {
	slug := strings.ToLower(strings.TrimSpace(model))
	slug = spaceRunRE.ReplaceAllString(slug, "-")
	slug = nonSlugRE.ReplaceAllString(slug, "")
	slug = hyphenRunRE.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// removeFold removes every case-insensitive occurrence of substr from s.
func removeFold(s, substr string) string {
	lower := strings.ToLower(s)
	needle := strings.ToLower(substr)
	for {
		i := strings.Index(lower, needle)
		if i < 0 {
			return s
		}
		s = s[:i] + s[i+len(needle):]
		lower = lower[:i] + lower[i+len(needle):]
	}
}
