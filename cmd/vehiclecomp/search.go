package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	sources, err := parseSources(c.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	listings, err := deps.Searcher.SearchAll(deps.Ctx, c.Query, sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	if len(listings) == 0 {
		fmt.Fprintf(deps.Stdout, "No listings found for %q.\n", c.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d listings for %q:\n\n", len(listings), c.Query)
	for i, l := range listings {
		printListing(deps.Stdout, i+1, l)
	}

	return nil
}

func printListing(w io.Writer, rank int, l vehiclecomp.Listing) {
	fmt.Fprintf(w, "%d. %s\n", rank, l.Title)
	fmt.Fprintf(w, "   Rs %s", formatPrice(l.Price))
	if l.Year > 0 {
		fmt.Fprintf(w, "  |  %d", l.Year)
	}
	if l.Mileage != "" && l.Mileage != vehiclecomp.DefaultMileage {
		fmt.Fprintf(w, "  |  %s", l.Mileage)
	}
	if l.Location != "" && l.Location != vehiclecomp.DefaultLocation {
		fmt.Fprintf(w, "  |  %s", l.Location)
	}
	fmt.Fprintf(w, "  |  %s\n", l.Source)
	if l.URL != "" {
		fmt.Fprintf(w, "   %s\n", l.URL)
	}
	fmt.Fprintln(w)
}

// parseSources converts the repeatable --sources flag into Source values.
func parseSources(names []string) ([]vehiclecomp.Source, error) {
	var sources []vehiclecomp.Source
	for _, name := range names {
		src, err := vehiclecomp.ParseSource(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// formatPrice renders a rupee amount with thousands separators, dropping the
// fraction: listing prices are quoted in whole rupees.
func formatPrice(price float64) string {
	digits := strconv.FormatInt(int64(price), 10)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
