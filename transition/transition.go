// SPDX-License-Identifier: MIT

package transition

import (
	"fmt"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/rank"
)

// Model returns the probability distribution of the surfer's next page when
// currently on page.
//
// Implementation:
//   - Stage 1: Validate damping (rank.ErrInvalidParameter) and the graph
//     (rank.ErrInvalidGraph).
//   - Stage 2: Resolve page to its index (rank.ErrInvalidPage).
//   - Stage 3: Fill the row via Row and project it back onto page IDs.
//
// Complexity:
//   - Time O(P + L) for graph validation plus O(N) for the row.
func Model(g *core.Graph, page string, d float64) (Distribution, error) {
	if err := rank.ValidateDamping(d); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", rank.ErrInvalidGraph, err)
	}
	i, ok := g.Index(page)
	if !ok {
		return nil, fmt.Errorf("%w: %q", rank.ErrInvalidPage, page)
	}

	row, err := Row(g, i, d, nil)
	if err != nil {
		return nil, err
	}
	dist := make(Distribution, len(row))
	for j, p := range row {
		dist[g.Page(j)] = p
	}

	return dist, nil
}

// Row writes the transition probabilities out of page i into dst, indexed by
// page index, and returns the (possibly reallocated) slice of length N.
//
// Row checks only what is cheap: a nil or empty graph, the index range and the
// damping factor. Callers on a hot path validate the graph once up front.
//
// Complexity: O(N + |out(i)|), no allocation when cap(dst) ≥ N.
func Row(g *core.Graph, i int, d float64, dst []float64) ([]float64, error) {
	if g == nil || g.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", rank.ErrInvalidGraph, core.ErrEmptyGraph)
	}
	if err := rank.ValidateDamping(d); err != nil {
		return nil, err
	}
	n := g.Len()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", rank.ErrInvalidPage, i, n)
	}

	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	out := g.Out(i)
	if len(out) == 0 {
		u := 1 / float64(n)
		for j := range dst {
			dst[j] = u
		}
		return dst, nil
	}

	base := (1 - d) / float64(n)
	for j := range dst {
		dst[j] = base
	}
	share := d / float64(len(out))
	for _, j := range out {
		dst[j] += share
	}

	return dst, nil
}
