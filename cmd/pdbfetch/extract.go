package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/pdbfetch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read search results %q: %w", c.Input, err)
	}

	ids, err := pdbfetch.ParseSearchResults(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdbfetch.ErrorMessage(err))
		return err
	}

	list := strings.Join(ids, ",")

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(list), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Extracted %d identifiers to %s\n", len(ids), c.Output)
		return nil
	}

	fmt.Fprintln(deps.Stdout, list)
	return nil
}
