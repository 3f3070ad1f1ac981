// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as "BuildGraph: %w";
// no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts cfg.idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph[string], cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// addEdge connects u and v with a weight drawn from cfg.weightFn.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, param string, got, lo int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, lo, ErrTooFewVertices)
}
