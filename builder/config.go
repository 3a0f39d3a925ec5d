// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// config.go — resolved builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and shared by all constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     PoolIDFn,        // graph's name pool: "A","B",...
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
