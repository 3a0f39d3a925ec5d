// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil graph or constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates a preset name that Preset does not recognize.
var ErrUnknownPreset = errors.New("builder: unknown preset")

// ErrUnknownScheme indicates an ID or weight scheme name that the resolvers do not recognize.
var ErrUnknownScheme = errors.New("builder: unknown scheme")

// ErrSchemeTooSmall indicates an ID scheme that cannot name every vertex of a build.
var ErrSchemeTooSmall = errors.New("builder: id scheme cannot name that many vertices")
