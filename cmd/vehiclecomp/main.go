package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	vchttp "github.com/SudithAmarasinghe/VehicleComp/http"
	vcredis "github.com/SudithAmarasinghe/VehicleComp/redis"
	vcrod "github.com/SudithAmarasinghe/VehicleComp/rod"
	"github.com/SudithAmarasinghe/VehicleComp/scrape"
	vcslog "github.com/SudithAmarasinghe/VehicleComp/slog"
	"github.com/SudithAmarasinghe/VehicleComp/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Redis address for the search result cache. Empty disables caching.
	RedisAddr string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Searcher  vehiclecomp.Searcher
	Knowledge vehiclecomp.KnowledgeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		RedisAddr: os.Getenv("VEHICLECOMP_REDIS"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vehiclecomp"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vehiclecomp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VEHICLECOMP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Knowledge = sqlite.NewKnowledgeService(m.DB)

	if m.Searcher == nil {
		newFetcher := func() vehiclecomp.Fetcher {
			return vchttp.NewFetcher()
		}
		if cli.Rendered {
			// One browser serves all three sources; the shared limiter
			// spaces page loads globally.
			fetcher, err := vcrod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			newFetcher = func() vehiclecomp.Fetcher { return fetcher }
		}

		aggregator := &scrape.Aggregator{
			Scrapers: scrape.All(newFetcher),
			Logger:   logger,
		}

		var searcher vehiclecomp.Searcher = aggregator
		if m.RedisAddr != "" {
			cache := vcredis.NewCachingSearcher(searcher, vcredis.NewClient(m.RedisAddr))
			cache.Logger = logger
			searcher = cache
		}
		m.Searcher = vcslog.NewLoggingSearcher(searcher, logger)
	}

	deps.DB = m.DB
	deps.Searcher = m.Searcher
	deps.Knowledge = m.Knowledge

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("VEHICLECOMP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vehiclecomp.db"
	}
	dir := filepath.Join(home, ".vehiclecomp")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vehiclecomp.db")
}
