// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols 4-neighbour lattice.
//
// Cell (r, c) gets index r*cols+c, so IDs follow cfg.idFn in row-major order.
// For each cell the right edge is emitted before the bottom edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}

		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
