package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pdbfetch"
	"github.com/fwojciec/pdbfetch/batch"
	"github.com/fwojciec/pdbfetch/fs"
	pdbhttp "github.com/fwojciec/pdbfetch/http"
	pdbzerolog "github.com/fwojciec/pdbfetch/zerolog"
	"github.com/google/uuid"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	// Preconditions: unreadable list or uncreatable output directory abort
	// before any request is issued.
	text, err := os.ReadFile(c.List)
	if err != nil {
		return fmt.Errorf("failed to read list file %q: %w", c.List, err)
	}

	ids := pdbfetch.ParseList(string(text))
	if len(ids) == 0 {
		fmt.Fprintln(deps.Stdout, "No identifiers in list, nothing to fetch")
		return nil
	}

	store := fs.NewStore(c.Out)
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", c.Out, err)
	}

	logger := deps.Logger.With().Str("run_id", uuid.NewString()).Logger()

	var fetcher pdbfetch.Fetcher = pdbhttp.NewFetcher(pdbhttp.WithTimeout(c.Timeout))
	fetcher = pdbzerolog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	runner := &batch.Runner{
		Fetcher:     fetcher,
		Store:       store,
		BaseURL:     c.BaseURL,
		Interval:    c.Delay,
		Concurrency: c.Concurrency,
		Logger:      logger,
	}

	fmt.Fprintf(deps.Stdout, "Fetching %d entries to %s\n", len(ids), c.Out)

	progress := func(ev batch.ProgressEvent) {
		switch ev.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "fetch %s\n", ev.Result.URL)
		case batch.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "ok %s -> %s\n", ev.Result.ID, ev.Result.Path)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "failed %s (%s): %v\n", ev.Result.ID, ev.Result.URL, ev.Result.Err)
		}
	}

	summary, runErr := runner.Run(deps.Ctx, ids, progress)

	// The completion line is printed regardless of outcome, interruption
	// included.
	fmt.Fprintf(deps.Stdout, "Done: %d saved, %d failed (of %d)\n",
		summary.Saved, summary.Failed, len(ids))

	if runErr != nil {
		return fmt.Errorf("batch interrupted: %w", runErr)
	}
	if summary.Failed > 0 && !c.AllowFailures {
		return fmt.Errorf("%d of %d downloads failed", summary.Failed, len(ids))
	}
	return nil
}
