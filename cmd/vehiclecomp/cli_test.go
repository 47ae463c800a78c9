package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/SudithAmarasinghe/VehicleComp/cmd/vehiclecomp"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "compare", "sources", "knowledge"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "compare", "sources", "knowledge"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_KnowledgeSeedAndList(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	seedOut := &bytes.Buffer{}
	m := main.NewMain()
	m.DBPath = dbPath
	require.NoError(t, m.Run(ctx, []string{"knowledge", "seed"}, seedOut, &bytes.Buffer{}))
	assert.Contains(t, seedOut.String(), "Seeded knowledge base with 10 insights.")

	// Second seed is a no-op against the same database.
	reseedOut := &bytes.Buffer{}
	m2 := main.NewMain()
	m2.DBPath = dbPath
	require.NoError(t, m2.Run(ctx, []string{"knowledge", "seed"}, reseedOut, &bytes.Buffer{}))
	assert.Contains(t, reseedOut.String(), "already contains 10 entries")

	listOut := &bytes.Buffer{}
	m3 := main.NewMain()
	m3.DBPath = dbPath
	require.NoError(t, m3.Run(ctx, []string{"knowledge", "list", "--make", "Toyota"}, listOut, &bytes.Buffer{}))
	assert.Contains(t, listOut.String(), "Toyota Aqua")
	assert.Contains(t, listOut.String(), "Toyota Prius")
	assert.NotContains(t, listOut.String(), "Honda Fit")
}

func TestMain_Run_Sources(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	require.NoError(t, m.Run(context.Background(), []string{"sources"}, stdout, &bytes.Buffer{}))

	output := stdout.String()
	assert.Contains(t, output, "Riyasewana")
	assert.Contains(t, output, "https://ikman.lk")
	assert.Contains(t, output, "https://patpat.lk")
}
