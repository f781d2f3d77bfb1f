// SPDX-License-Identifier: MIT

package linkrank

import (
	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/iterative"
	"github.com/katalvlaran/linkrank/rank"
	"github.com/katalvlaran/linkrank/sampling"
)

// Defaults shared by both engines and the command line.
const (
	// DefaultDamping is the probability of following an outlink.
	DefaultDamping = 0.85

	// DefaultSamples is the number of pages a sampling walk records.
	DefaultSamples = 10000

	// DefaultTolerance is the per-page convergence threshold of iteration.
	DefaultTolerance = 0.001
)

// SampleRank estimates ranks by a random walk of `samples` recorded pages.
// An optional seed makes the walk reproducible; only the first one is used.
//
// Errors: rank.ErrInvalidGraph, rank.ErrInvalidParameter.
func SampleRank(g *core.Graph, damping float64, samples int, seed ...int64) (rank.RankMap, error) {
	opts := []sampling.Option{
		sampling.WithDamping(damping),
		sampling.WithSamples(samples),
	}
	if len(seed) > 0 {
		opts = append(opts, sampling.WithSeed(seed[0]))
	}

	return sampling.Rank(g, opts...)
}

// IterateRank computes ranks by fixed-point iteration until every page moves
// by at most tolerance in one pass. An optional maxIterations caps the passes
// (0 means unbounded); exceeding it yields *rank.NonConvergenceError.
//
// Errors: rank.ErrInvalidGraph, rank.ErrInvalidParameter, rank.ErrNonConvergence.
func IterateRank(g *core.Graph, damping, tolerance float64, maxIterations ...int) (rank.RankMap, error) {
	opts := []iterative.Option{
		iterative.WithDamping(damping),
		iterative.WithTolerance(tolerance),
	}
	if len(maxIterations) > 0 {
		opts = append(opts, iterative.WithMaxIterations(maxIterations[0]))
	}

	return iterative.Rank(g, opts...)
}
