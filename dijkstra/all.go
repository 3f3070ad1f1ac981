// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/core"
)

// Result is the outcome of one run inside DijkstraAll.
type Result[V comparable] struct {
	Source V
	Dist   map[V]float64
	Prev   map[V]V
}

// DijkstraAll runs Dijkstra once per source and returns the results in the
// order of sources.
//
// Runs share g read-only and execute on an errgroup bounded by
// Options.Concurrency (GOMAXPROCS when ≤ 0). The first failing run cancels
// the group; its error is wrapped with the offending source. Cancelling ctx
// stops runs that have not started yet and returns ctx's error.
//
// Complexity: the sum of the individual runs, divided across workers.
func DijkstraAll[V comparable](ctx context.Context, g *core.Graph[V], sources []V, opts ...Option) ([]Result[V], error) {
	cfg := resolveOptions(opts)
	if g == nil {
		sinkFor(g, cfg).Error("invalid graph argument provided to dijkstra fan-out")
		return nil, ErrInvalidGraphArgument
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result[V], len(sources))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)

	for i, src := range sources {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dist, prev, err := Dijkstra(g, src, opts...)
			if err != nil {
				return fmt.Errorf("source %v: %w", src, err)
			}
			results[i] = Result[V]{Source: src, Dist: dist, Prev: prev}

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
