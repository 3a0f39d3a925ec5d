// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K1 is a single isolated vertex.
//   - Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/pathstep/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}

		return connectAll(MethodComplete, g, cfg, vs)
	}
}
