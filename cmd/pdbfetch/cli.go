package main

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Fetch   FetchCmd   `cmd:"" help:"Download entry records for each identifier in a list file"`
	Extract ExtractCmd `cmd:"" help:"Extract identifiers from a Search API results file"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	List          string        `short:"l" required:"" help:"Path to the identifier list file (comma- or newline-separated)"`
	Out           string        `short:"o" default:"." help:"Output directory for downloaded records"`
	BaseURL       string        `default:"https://data.rcsb.org/rest/v1/core/entry" help:"Entry endpoint; the identifier is appended as the final path segment"`
	Delay         time.Duration `default:"200ms" help:"Minimum spacing between requests"`
	Timeout       time.Duration `short:"t" default:"10s" help:"Timeout per request"`
	Concurrency   int           `short:"c" default:"1" help:"Maximum in-flight requests"`
	AllowFailures bool          `help:"Exit zero even when some downloads fail"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input  string `arg:"" help:"Path to a Search API results JSON file"`
	Output string `short:"o" optional:"" help:"Write the comma-separated list to a file instead of stdout"`
}
