// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need loops or parallel edges.
//   - Emits v[i]—v[(i+1) mod n] for i ascending; the closing edge comes last.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathstep/core"

// Cycle returns a Constructor that builds a ring of n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(MethodCycle, g, cfg, vs[i], vs[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
