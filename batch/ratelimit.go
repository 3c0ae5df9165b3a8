package batch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces batch attempts at a fixed interval using a token bucket
// with a burst of 1 (no bursting allowed). Unlike a per-attempt sleep,
// the pacing contract survives concurrent dispatch: attempts are spaced
// globally regardless of how many workers are in flight.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that allows one attempt per interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next attempt is allowed.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
