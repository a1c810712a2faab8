package chartjs

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ramsolanki/Chart.js/interaction"
)

// ResolveAll resolves a recorded sequence of events against the same chart
// snapshot, fanning out across goroutines. Every query is a pure read over
// chart state, so concurrent resolution is safe; results keep event order.
//
// The chart must not be mutated while ResolveAll runs.
func (r *Resolver) ResolveAll(ctx context.Context, mode interaction.Mode, c interaction.Chart, events []interaction.Event, opts interaction.Options) ([][]interaction.Match, error) {
	start := time.Now()
	results := make([][]interaction.Match, len(events))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ev := range events {
		i, ev := i, ev
		g.Go(func() error {
			matches, err := r.Resolve(ctx, mode, c, ev, opts)
			if err != nil {
				return err
			}
			results[i] = matches
			return nil
		})
	}

	err := g.Wait()
	r.metrics.RecordBatchResolve(len(events), time.Since(start), err)
	r.logger.LogBatchResolve(ctx, string(mode), len(events), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}
