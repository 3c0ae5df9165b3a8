// Package zerolog provides logging decorators for pdbfetch interfaces.
package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/pdbfetch"
	"github.com/rs/zerolog"
)

// Ensure LoggingFetcher implements pdbfetch.Fetcher at compile time.
var _ pdbfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of each request:
// URL, byte count, duration, and error.
type LoggingFetcher struct {
	next   pdbfetch.Fetcher
	logger zerolog.Logger
}

// NewLoggingFetcher creates a LoggingFetcher wrapping next.
func NewLoggingFetcher(next pdbfetch.Fetcher, logger zerolog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped Fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	body, err := f.next.Fetch(ctx, url)
	ev := f.logger.Debug().
		Str("url", url).
		Dur("duration", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("fetch")
		return nil, err
	}
	ev.Int("bytes", len(body)).Msg("fetch")
	return body, nil
}

// Close delegates to the wrapped Fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
