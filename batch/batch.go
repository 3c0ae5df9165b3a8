// Package batch provides batch download orchestration.
// It coordinates rate-limited fetching and persistence of entry records,
// one attempt per identifier, tolerating per-item failures.
package batch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pdbfetch"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval is the minimum spacing between request attempts.
// It bounds request rate against the remote service; it is not a backoff.
const DefaultInterval = 200 * time.Millisecond

// Runner orchestrates the download of a batch of identifiers.
type Runner struct {
	Fetcher pdbfetch.Fetcher
	Store   pdbfetch.ArtifactStore

	// BaseURL is the fixed endpoint prefix; the identifier is appended as
	// the final path segment. No percent-encoding is applied: identifiers
	// with characters requiring escaping are a caller responsibility.
	BaseURL string

	// Interval is the spacing enforced between attempts, success or
	// failure alike. Defaults to DefaultInterval.
	Interval time.Duration

	// Concurrency bounds in-flight requests. Defaults to 1, which
	// reproduces strictly sequential dispatch in input order.
	Concurrency int

	Logger zerolog.Logger
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Result    pdbfetch.Result
	Completed int
	Total     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressStarted is emitted once per identifier, before its attempt.
	ProgressStarted ProgressType = iota
	// ProgressSaved is emitted after a successful fetch and save.
	ProgressSaved
	// ProgressFailed is emitted after a failed attempt.
	ProgressFailed
	// ProgressFinished is emitted once, after the whole batch.
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
// With Concurrency > 1 terminal events may arrive out of input order, but
// exactly one Saved or Failed event is emitted per dispatched identifier.
type ProgressFunc func(event ProgressEvent)

// Run attempts exactly one fetch per identifier, in input order, never
// stopping early on a per-item failure. Duplicates are fetched once per
// occurrence. It returns the batch summary; the only error returned is
// the context's, when cancellation cut the batch short.
func (r *Runner) Run(ctx context.Context, ids []string, progress ProgressFunc) (*pdbfetch.Summary, error) {
	total := len(ids)
	summary := &pdbfetch.Summary{}

	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	pacer := NewPacer(interval)

	var mu sync.Mutex
	emit := func(ev ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	var g errgroup.Group
	g.SetLimit(concurrency)

	for _, id := range ids {
		id := id
		// Stop dispatching promptly on cancellation; in-flight attempts
		// drain below.
		if err := pacer.Wait(ctx); err != nil {
			break
		}

		url := r.entryURL(id)

		g.Go(func() error {
			mu.Lock()
			summary.Attempted++
			emit(ProgressEvent{
				Type:   ProgressStarted,
				Result: pdbfetch.Result{ID: id, URL: url},
				Total:  total,
			})
			mu.Unlock()

			res := r.fetchOne(ctx, id, url)

			mu.Lock()
			defer mu.Unlock()

			ev := ProgressEvent{Result: res, Total: total}
			if res.Err != nil {
				summary.Failed++
				ev.Type = ProgressFailed
				r.Logger.Debug().Str("id", id).Str("url", url).Err(res.Err).Msg("attempt failed")
			} else {
				summary.Saved++
				ev.Type = ProgressSaved
				r.Logger.Debug().Str("id", id).Str("path", res.Path).Str("hash", res.Hash).Msg("artifact saved")
			}
			ev.Completed = summary.Saved + summary.Failed
			emit(ev)
			return nil
		})
	}

	_ = g.Wait()

	mu.Lock()
	emit(ProgressEvent{Type: ProgressFinished, Completed: summary.Saved + summary.Failed, Total: total})
	mu.Unlock()

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// fetchOne performs the single attempt for one identifier.
// A failure at any stage yields a failed Result; no artifact is left behind.
func (r *Runner) fetchOne(ctx context.Context, id, url string) pdbfetch.Result {
	res := pdbfetch.Result{ID: id, URL: url}

	body, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		res.Err = err
		return res
	}

	path, err := r.Store.Save(ctx, id, body)
	if err != nil {
		res.Err = err
		return res
	}

	res.Path = path
	res.Hash = computeHash(body)
	return res
}

func (r *Runner) entryURL(id string) string {
	return strings.TrimSuffix(r.BaseURL, "/") + "/" + id
}
