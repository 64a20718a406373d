package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// Race runs several strategies concurrently over the same grid and returns
// their results in the order the strategies were given. With no strategies
// listed it runs all of them. The grid is read-only, so no locking is needed;
// each search owns its frontier and visited set.
//
// The first input error or cancellation cancels the siblings and is returned.
func Race(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Cell, strategies []Strategy, opts ...Option) ([]Result, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	results := make([]Result, len(strategies))
	eg, gctx := errgroup.WithContext(ctx)

	for i, s := range strategies {
		eg.Go(func() error {
			// a later WithContext wins, so the group context overrides any caller-supplied one
			res, err := s.FindPath(g, start, goal, append(opts[:len(opts):len(opts)], WithContext(gctx))...)
			results[i] = res
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
