package main

import (
	"fmt"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"github.com/SudithAmarasinghe/VehicleComp/scrape"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	origins := map[vehiclecomp.Source]string{
		vehiclecomp.SourceRiyasewana: scrape.RiyasewanaBaseURL,
		vehiclecomp.SourceIkman:      scrape.IkmanBaseURL,
		vehiclecomp.SourcePatpat:     scrape.PatpatBaseURL,
	}

	for _, src := range vehiclecomp.AllSources() {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", src, origins[src])
	}
	return nil
}
