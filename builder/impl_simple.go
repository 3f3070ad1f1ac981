// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
)

// Path returns a Constructor for the simple path 0-1-...-(n-1).
// Edges are emitted as (i, i+1) for i ascending.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathVertices {
			return tooFew(methodPath, "n", n, minPathVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n: Path(n) closed by (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleVertices {
			return tooFew(methodCycle, "n", n, minCycleVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarVertices {
			return tooFew(methodStar, "n", n, minStarVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: every unordered pair {i, j}, i < j,
// emitted in lexicographic index order.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteVertices {
			return tooFew(methodComplete, "n", n, minCompleteVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
