package main

import (
	"fmt"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"github.com/SudithAmarasinghe/VehicleComp/sqlite"
)

// Run executes the knowledge seed command.
func (c *KnowledgeSeedCmd) Run(deps *Dependencies) error {
	svc, ok := deps.Knowledge.(*sqlite.KnowledgeService)
	if !ok {
		err := vehiclecomp.Errorf(vehiclecomp.EINTERNAL, "knowledge base does not support seeding")
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	seeded, err := svc.Seed(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	if seeded == 0 {
		count, err := deps.Knowledge.CountEntries(deps.Ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Knowledge base already contains %d entries.\n", count)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Seeded knowledge base with %d insights.\n", seeded)
	return nil
}

// Run executes the knowledge list command.
func (c *KnowledgeListCmd) Run(deps *Dependencies) error {
	filter := vehiclecomp.KnowledgeFilter{Limit: c.Limit}
	if c.Make != "" {
		filter.Make = &c.Make
	}
	if c.Model != "" {
		filter.Model = &c.Model
	}

	entries, err := deps.Knowledge.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vehiclecomp.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'vehiclecomp knowledge seed' to load the initial insights.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s\n", e.Topic)
		fmt.Fprintf(deps.Stdout, "   %s\n\n", e.Content)
	}

	return nil
}
