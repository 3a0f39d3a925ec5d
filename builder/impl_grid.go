// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices use the fixed coordinate labels "r,c", row-major; cfg.idFn is ignored.
//   - For each cell in row-major order: right edge, then bottom edge.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const gridIDFmt = "%d,%d" // "r,c"

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([]*core.Vertex, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				v, err := g.NewVertex(id)
				if err != nil {
					return fmt.Errorf("%s: NewVertex(%s): %w", MethodGrid, id, err)
				}
				cells = append(cells, v)
			}
		}

		at := func(r, c int) *core.Vertex { return cells[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(MethodGrid, g, cfg, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(MethodGrid, g, cfg, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
