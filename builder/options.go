// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// options.go — functional options for BuildGraph.
//
// Option constructors panic on invalid arguments: a bad option is a
// programming error, not a runtime condition.

package builder

import "math/rand"

// BuilderOption mutates the builder configuration before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand sets the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG; equal seeds yield equal graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
