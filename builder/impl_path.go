// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits edges v[i]—v[i+1] for i = 0..n-2, in that order.
//
// Complexity: O(n) time, O(n) space for the vertex slice.

package builder

import "github.com/katalvlaran/pathstep/core"

// Path returns a Constructor that builds a simple path of n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(MethodPath, g, cfg, vs[i], vs[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
