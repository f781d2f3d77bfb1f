// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only accessors of the immutable Graph.
//
// Policy:
//   - Index-based accessors (Out, In, Dangling) return the internal slices for
//     zero-copy use in hot loops. Callers MUST NOT modify them.
//   - ID-based accessors (Pages, OutLinks, AdjacencyList) return fresh copies.
//   - Nothing here mutates the Graph, so every method is safe for concurrent use.

package core

import "fmt"

// Len returns the number of pages N.
func (g *Graph) Len() int { return len(g.ids) }

// LinkCount returns the number of links.
func (g *Graph) LinkCount() int { return g.links }

// Pages returns a copy of all page IDs in index order (sorted ascending).
func (g *Graph) Pages() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Page returns the ID of the page with index i.
// It panics if i is out of range, like a slice index.
func (g *Graph) Page(i int) string { return g.ids[i] }

// Index returns the index of page id and whether it exists.
// Complexity: O(1).
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Has reports whether id is a page of g.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Out returns the sorted outlink indices of page i (read-only).
func (g *Graph) Out(i int) []int { return g.out[i] }

// In returns the sorted indices of pages linking to page i (read-only).
func (g *Graph) In(i int) []int { return g.in[i] }

// OutDegree returns |out(i)|.
func (g *Graph) OutDegree(i int) int { return len(g.out[i]) }

// IsDangling reports whether page i has no outlinks.
func (g *Graph) IsDangling(i int) bool { return len(g.out[i]) == 0 }

// Dangling returns the ascending indices of all dangling pages (read-only).
func (g *Graph) Dangling() []int { return g.dangling }

// OutLinks returns the outlink IDs of page id, sorted ascending.
// Returns ErrPageNotFound for an unknown page.
func (g *Graph) OutLinks(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
	}
	out := make([]string, len(g.out[i]))
	for k, j := range g.out[i] {
		out[k] = g.ids[j]
	}

	return out, nil
}

// AdjacencyList returns a fresh page → sorted outlinks map.
// Dangling pages map to an empty, non-nil slice.
// Complexity: O(P + L).
func (g *Graph) AdjacencyList() map[string][]string {
	adj := make(map[string][]string, len(g.ids))
	for i, id := range g.ids {
		row := make([]string, len(g.out[i]))
		for k, j := range g.out[i] {
			row[k] = g.ids[j]
		}
		adj[id] = row
	}

	return adj
}

// Validate re-checks every structural invariant of g.
//
// Graphs produced by Freeze always pass; Validate exists so that engines can
// reject a zero-value or otherwise hand-assembled Graph before computing.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph.
//   - ErrUnknownTarget if an adjacency entry is out of range or the index table
//     disagrees with the ID slice.
//   - ErrSelfLink if a page lists itself.
//
// Complexity: O(P + L).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	n := len(g.ids)
	if n == 0 {
		return ErrEmptyGraph
	}
	if len(g.index) != n || len(g.out) != n || len(g.in) != n {
		return fmt.Errorf("%w: inconsistent page tables", ErrUnknownTarget)
	}
	for i, id := range g.ids {
		if j, ok := g.index[id]; !ok || j != i {
			return fmt.Errorf("%w: page %q not indexed", ErrUnknownTarget, id)
		}
		for _, j := range g.out[i] {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: %q → #%d", ErrUnknownTarget, id, j)
			}
			if j == i {
				return fmt.Errorf("%w: %q", ErrSelfLink, id)
			}
		}
	}

	return nil
}
