// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodFromEdges = "FromEdges"
	methodClassic   = "Classic"
)

// EdgeSpec is one explicit weighted edge for FromEdges.
type EdgeSpec struct {
	U, V   string
	Weight float64
}

// FromEdges returns a Constructor adding edges verbatim, in order.
// IDs and weights are taken as given; idFn and weightFn are not consulted.
func FromEdges(edges []EdgeSpec) Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		for i, e := range edges {
			if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
				return fmt.Errorf("%s: edge %d (%s,%s): %v: %w", methodFromEdges, i, e.U, e.V, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// ClassicEdges is the six-vertex reference graph used throughout the tests
// and by the CLI's "classic" topology. From A the shortest distances are
// A:0 B:3 C:2 D:8 E:10 F:13.
var ClassicEdges = []EdgeSpec{
	{"A", "B", 4},
	{"A", "C", 2},
	{"B", "C", 1},
	{"B", "D", 5},
	{"C", "D", 8},
	{"C", "E", 10},
	{"D", "E", 2},
	{"D", "F", 6},
	{"E", "F", 3},
}

// Classic returns a Constructor for the reference graph in ClassicEdges.
func Classic() Constructor {
	inner := FromEdges(ClassicEdges)

	return func(g *core.Graph[string], cfg builderConfig) error {
		if err := inner(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodClassic, err)
		}

		return nil
	}
}
