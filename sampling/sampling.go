// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/rank"
	"github.com/katalvlaran/linkrank/transition"
)

// Rank estimates the PageRank of every page of g by random-walk sampling.
//
// Implementation:
//   - Stage 1: Apply options; the first recorded option error wins.
//   - Stage 2: Validate g (rank.ErrInvalidGraph wrapping the core sentinel).
//   - Stage 3: Pick the start page uniformly, record it.
//   - Stage 4: n-1 times: build the transition row of the current page into a
//     reused buffer, draw the next page by cumulative scan, record it.
//   - Stage 5: Normalize counts by n.
//
// Behavior highlights:
//   - A single-page graph returns {page: 1} without consuming randomness.
//   - Every page of g appears in the result, visited or not.
//
// Complexity:
//   - Time O(n·N), Space O(N).
func Rank(g *core.Graph, opts ...Option) (rank.RankMap, error) {
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
	if n == 1 {
		if o.OnStep != nil {
			for s := 0; s < o.Samples; s++ {
				o.OnStep(s, g.Page(0))
			}
		}
		return rank.RankMap{g.Page(0): 1}, nil
	}

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	counts := make([]int, n)
	row := make([]float64, n)

	cur := rng.Intn(n)
	counts[cur]++
	if o.OnStep != nil {
		o.OnStep(0, g.Page(cur))
	}

	var err error
	for s := 1; s < o.Samples; s++ {
		if s%cancelCheckEvery == 0 {
			if err = o.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		if row, err = transition.Row(g, cur, o.Damping, row); err != nil {
			return nil, err
		}
		cur = pick(row, rng.Float64())
		counts[cur]++
		if o.OnStep != nil {
			o.OnStep(s, g.Page(cur))
		}
	}

	out := make(rank.RankMap, n)
	total := float64(o.Samples)
	for i, c := range counts {
		out[g.Page(i)] = float64(c) / total
	}

	return out, nil
}

// pick returns the first index whose cumulative weight exceeds u.
// Rounding can leave the running sum just below 1; the last index with a
// positive weight absorbs that remainder.
func pick(weights []float64, u float64) int {
	var acc float64
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if u < acc {
			return i
		}
	}

	return last
}
