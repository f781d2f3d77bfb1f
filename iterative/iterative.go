// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/rank"
)

// Rank is Solve without the run metadata.
func Rank(g *core.Graph, opts ...Option) (rank.RankMap, error) {
	res, err := Solve(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Ranks, nil
}

// Solve iterates the PageRank equation on g until every page moves by at
// most the tolerance in one pass.
//
// Implementation:
//   - Stage 1: Apply options; the first recorded option error wins.
//   - Stage 2: Validate g (rank.ErrInvalidGraph wrapping the core sentinel).
//   - Stage 3: Precompute 1/|out(q)| and start from the uniform vector.
//   - Stage 4: Each pass: collect dangling mass D, then pull
//     new(p) = base + d·Σ_{q∈in(p)} r(q)/|out(q)| with
//     base = (1-d)/N + d·D/N; track the largest |new-old|; swap buffers.
//   - Stage 5: Stop when that maximum is ≤ tolerance, or fail with
//     *rank.NonConvergenceError once MaxIterations passes are spent.
//
// Behavior highlights:
//   - Deterministic: the same graph and parameters give bit-identical ranks.
//   - Context is checked before every pass; cancellation returns ctx.Err().
//
// Complexity:
//   - Time O(k·(N + L)), Space O(N).
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", rank.ErrInvalidGraph, err)
	}

	n := g.Len()
	fn := float64(n)
	d := o.Damping

	invDeg := make([]float64, n)
	for q := 0; q < n; q++ {
		if k := g.OutDegree(q); k > 0 {
			invDeg[q] = 1 / float64(k)
		}
	}

	cur := make([]float64, n)
	next := make([]float64, n)
	for i := range cur {
		cur[i] = 1 / fn
	}

	state := Initialized
	iter := 0
	var maxDelta float64

	for state != Converged {
		if o.MaxIterations > 0 && iter >= o.MaxIterations {
			return nil, &rank.NonConvergenceError{
				Iterations: iter,
				MaxDelta:   maxDelta,
				Last:       toRankMap(g, cur),
			}
		}
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		var dangling float64
		for _, q := range g.Dangling() {
			dangling += cur[q]
		}
		base := (1-d)/fn + d*dangling/fn

		maxDelta = 0
		for p := 0; p < n; p++ {
			var pulled float64
			for _, q := range g.In(p) {
				pulled += cur[q] * invDeg[q]
			}
			next[p] = base + d*pulled
			if delta := math.Abs(next[p] - cur[p]); delta > maxDelta {
				maxDelta = delta
			}
		}
		cur, next = next, cur
		iter++

		if o.OnIteration != nil {
			o.OnIteration(iter, maxDelta)
		}
		if maxDelta <= o.Tolerance {
			state = Converged
		} else {
			state = Iterating
		}
	}

	return &Result{
		Ranks:      toRankMap(g, cur),
		Iterations: iter,
		MaxDelta:   maxDelta,
		State:      state,
		Guaranteed: d < 1,
	}, nil
}

func toRankMap(g *core.Graph, r []float64) rank.RankMap {
	out := make(rank.RankMap, len(r))
	for i, v := range r {
		out[g.Page(i)] = v
	}

	return out
}
