package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FindAll answers every query with at most Options.Workers searches in
// flight. results[i] always belongs to queries[i].
//
// Per-query failures (ErrNoPath, ErrImpassableEndpoint, ...) land in
// BatchResult.Err and never stop the batch. Cancelling ctx stops new
// queries from starting; queries already running finish normally. The
// returned error is non-nil only if some queries were skipped, and those
// carry the context error in their Err field.
func (f *Finder) FindAll(ctx context.Context, queries []Query) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))
	ran := make([]bool, len(queries))
	for i, q := range queries {
		results[i].Query = q
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(f.opts.Workers)
	for i := range results {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ran[i] = true
			results[i].Result, results[i].Err = f.Search(results[i].Start, results[i].Goal)
			return nil
		})
	}
	waitErr := eg.Wait()

	// Anything not started inherits the cancellation cause.
	var skipped error
	for i := range results {
		if ran[i] {
			continue
		}
		if skipped = waitErr; skipped == nil {
			skipped = context.Cause(ctx)
		}
		results[i].Err = skipped
	}

	return results, skipped
}
