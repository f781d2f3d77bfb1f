// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w:
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   - Validation priority: size, then probability, then RNG presence.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or corpus, or a corpus
	// that rejected a page or link.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrIDOutOfRange indicates a page index the ID scheme cannot name,
	// e.g. index 26 under SymbolIDFn.
	ErrIDOutOfRange = errors.New("builder: page index outside the ID scheme")

	// ErrUnknownTopology indicates a name Topology does not know.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)
