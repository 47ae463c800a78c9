package vehiclecomp

import "sort"

// QuerySummary holds price statistics for one compared query. Count covers
// every listing returned for the query; the price statistics cover only the
// priced subset (price > 0).
type QuerySummary struct {
	Count    int      `json:"count"`
	AvgPrice float64  `json:"avg_price"`
	MinPrice float64  `json:"min_price"`
	MaxPrice float64  `json:"max_price"`
	Sources  []Source `json:"sources"`
}

// ComparisonResult aggregates independent searches for several queries.
// A query that yielded no listings has an entry in Listings but no entry in
// Summaries: absence of a summary key is the "no data" signal, never a
// zero-filled summary.
type ComparisonResult struct {
	Listings  map[string][]Listing    `json:"listings"`
	Summaries map[string]QuerySummary `json:"summaries"`
}

// Summarize computes the comparison statistics for one query's listings.
// The second return is false when no listing carries a usable price, in
// which case no summary entry should be recorded.
func Summarize(listings []Listing) (QuerySummary, bool) {
	var total float64
	var priced int
	summary := QuerySummary{Count: len(listings)}
	seen := make(map[Source]bool)

	for _, l := range listings {
		if l.Price <= 0 {
			continue
		}
		if priced == 0 {
			summary.MinPrice = l.Price
			summary.MaxPrice = l.Price
		}
		if l.Price < summary.MinPrice {
			summary.MinPrice = l.Price
		}
		if l.Price > summary.MaxPrice {
			summary.MaxPrice = l.Price
		}
		total += l.Price
		priced++
		if !seen[l.Source] {
			seen[l.Source] = true
			summary.Sources = append(summary.Sources, l.Source)
		}
	}

	if priced == 0 {
		return QuerySummary{}, false
	}

	summary.AvgPrice = total / float64(priced)
	sort.Slice(summary.Sources, func(i, j int) bool {
		return summary.Sources[i] < summary.Sources[j]
	})
	return summary, true
}
