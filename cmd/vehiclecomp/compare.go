package main

import (
	"fmt"
	"strings"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	if len(c.Queries) < 2 {
		err := vehiclecomp.Errorf(vehiclecomp.EINVALID, "compare needs at least two queries")
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	result, err := deps.Searcher.Compare(deps.Ctx, c.Queries)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	// Iterate the argument order, not map order.
	for _, query := range c.Queries {
		listings := result.Listings[query]
		summary, ok := result.Summaries[query]
		if !ok {
			fmt.Fprintf(deps.Stdout, "%s: no priced listings found\n\n", query)
			continue
		}

		sources := make([]string, 0, len(summary.Sources))
		for _, src := range summary.Sources {
			sources = append(sources, string(src))
		}

		fmt.Fprintf(deps.Stdout, "%s: %d listings\n", query, summary.Count)
		fmt.Fprintf(deps.Stdout, "   avg Rs %s  |  min Rs %s  |  max Rs %s\n",
			formatPrice(summary.AvgPrice), formatPrice(summary.MinPrice), formatPrice(summary.MaxPrice))
		fmt.Fprintf(deps.Stdout, "   sources: %s\n", strings.Join(sources, ", "))

		if len(listings) > 0 {
			best := listings[0]
			fmt.Fprintf(deps.Stdout, "   best: %s at Rs %s (%s)\n", best.Title, formatPrice(best.Price), best.Source)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
