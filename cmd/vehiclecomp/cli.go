package main

import (
	"context"
	"io"
	"log/slog"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"github.com/SudithAmarasinghe/VehicleComp/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Searcher  vehiclecomp.Searcher
	Knowledge vehiclecomp.KnowledgeService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool `short:"v" help:"Enable debug logging"`
	Rendered bool `short:"r" help:"Fetch with headless Chrome for JS-rendered result pages"`

	Search    SearchCmd    `cmd:"" help:"Search listings across all sites"`
	Compare   CompareCmd   `cmd:"" help:"Compare price statistics across vehicle queries"`
	Sources   SourcesCmd   `cmd:"" help:"List the supported listing sites"`
	Knowledge KnowledgeCmd `cmd:"" help:"Manage the market knowledge base"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string   `arg:"" help:"Free-text vehicle query, e.g. 'Toyota Aqua 2015-2018'"`
	Sources []string `short:"s" help:"Restrict to specific sites (repeatable)"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Queries []string `arg:"" help:"Two or more vehicle queries to compare"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// KnowledgeCmd groups the knowledge base subcommands.
type KnowledgeCmd struct {
	Seed KnowledgeSeedCmd `cmd:"" help:"Load the initial market insights"`
	List KnowledgeListCmd `cmd:"" help:"List stored market insights"`
}

// KnowledgeSeedCmd is the "knowledge seed" subcommand.
type KnowledgeSeedCmd struct{}

// KnowledgeListCmd is the "knowledge list" subcommand.
type KnowledgeListCmd struct {
	Make  string `help:"Filter by vehicle make"`
	Model string `help:"Filter by vehicle model"`
	Limit int    `default:"20" help:"Maximum entries to show"`
}
