package pdbfetch

import "context"

// Fetcher retrieves raw response bodies from URLs.
type Fetcher interface {
	// Fetch issues a single GET request and returns the response body
	// verbatim. Any transport error or non-success HTTP status is returned
	// as an error; callers do not distinguish between the two.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body []byte, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
