// SPDX-License-Identifier: MIT
// Package: parboruvka/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w ("RandomConnected: e=2 < v-1=4: ...").
//   • Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
// Typical origins: Cycle(n<3), Path(n<1), Grid(rows<1), RandomConnected(v<1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewEdges indicates RandomConnected was asked for fewer than v-1 edges,
// which cannot connect v vertices.
var ErrTooFewEdges = errors.New("builder: too few edges to connect")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the build could not proceed: a nil
// constructor, or a request no simple graph can satisfy.
var ErrConstructFailed = errors.New("builder: construction failed")
