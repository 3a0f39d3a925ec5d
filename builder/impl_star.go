// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1.
//   - Emits spokes hub—leaf[i] by increasing leaf index.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathstep/core"

// Star returns a Constructor that builds a star of n vertices: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for _, leaf := range vs[1:] {
			if err = connect(MethodStar, g, cfg, vs[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
