// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a hub plus a rim cycle of n-1 ≥ 3.
//   - Vertex 0 is the hub; the rim is 1..n-1.
//   - Emits the rim first (i ascending, closing edge last), then the spokes.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/pathstep/core"

// Wheel returns a Constructor that builds a wheel of n vertices.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		vs, err := addVertices(MethodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		hub, rim := vs[0], vs[1:]
		for i := range rim {
			if err = connect(MethodWheel, g, cfg, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = connect(MethodWheel, g, cfg, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
