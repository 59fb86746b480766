package orchestrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// GenerateAll renders every request concurrently and, once all succeed,
// writes them concurrently. Requests must resolve to distinct output paths,
// so an id appears at most once per target. A duplicate or any failed render
// aborts the batch before anything is written. Results keep the order of
// reqs.
func (o *Orchestrator) GenerateAll(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}
	for i, req := range reqs {
		g.Go(func() error {
			result, err := o.prepare(gctx, req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(results))
	for i, result := range results {
		if prev, dup := seen[result.Path]; dup {
			return nil, fmt.Errorf("orchestrator: requests %d and %d both generate %q (%s)", prev, i, result.ID, result.Path)
		}
		seen[result.Path] = i
	}

	w, wctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		w.SetLimit(o.concurrency)
	}
	for i := range results {
		if reqs[i].DryRun {
			continue
		}
		w.Go(func() error {
			return o.write(wctx, &results[i])
		})
	}
	if err := w.Wait(); err != nil {
		return nil, err
	}

	o.logger.Info("batch complete", "definitions", len(results))
	return results, nil
}
