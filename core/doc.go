// SPDX-License-Identifier: MIT

// Package core provides the link-graph model every ranking engine reads:
// a thread-safe mutable Corpus for collecting pages and links, and the
// immutable, index-based Graph that Corpus.Freeze produces.
//
// The Graph G = (P, L) is a set of pages P and a set of directed links L ⊆ P×P
// with the following invariants, established by Freeze and re-checked by
// Graph.Validate:
//
//   - Every link target is itself a page of the graph (no external references).
//   - No page links to itself (self-links are removed or rejected).
//   - P is non-empty.
//   - The Graph never changes after construction.
//
// Why two types?
//
//   - Corpus is what upstream collaborators (crawlers, document loaders, fixture
//     builders) fill in, in any order, possibly from several goroutines. A link
//     may name a target that only appears later, so target validation has to be
//     deferred until the corpus is complete.
//   - Graph is what the engines iterate over millions of times. Pages are dense
//     indices 0..N-1 into a sorted ID slice, with a side table ID → index, and
//     adjacency is stored as []int in both directions. No string hashing happens
//     inside the hot loops.
//
// Link policy (CorpusOption):
//
//	– default (lenient)
//	    Self-links are dropped silently. Links to pages that never appear in the
//	    corpus are pruned at Freeze. This mirrors a crawler that only keeps links
//	    to documents it has actually seen.
//
//	– WithStrictLinks()
//	    AddLink(p, p) returns ErrSelfLink, and Freeze returns ErrUnknownTarget for
//	    the first link whose target was never added as a page.
//
// Core Methods:
//
//	// Corpus (mutable, RWMutex-guarded)
//	AddPage(id string) error                  // O(1), idempotent
//	AddLink(from, to string) error            // O(1), idempotent, auto-adds from
//	AddLinks(from string, to ...string) error // O(k)
//	HasPage / HasLink / PageCount / LinkCount // O(1)
//	Pages() []string                          // O(P log P), sorted
//	OutLinks(id string) ([]string, error)     // O(d log d), sorted
//	Freeze() (*Graph, error)                  // O(P log P + L log L)
//
//	// Graph (immutable, safe for concurrent readers)
//	Len() int; Pages() []string; Page(i) string; Index(id) (int, bool)
//	Out(i) []int; In(i) []int; OutDegree(i) int
//	IsDangling(i) bool; Dangling() []int
//	OutLinks(id) ([]string, error); AdjacencyList() map[string][]string
//	Validate() error
//
// Determinism:
//
//	Page indices follow lexicographic ID order and every adjacency slice is
//	sorted ascending, so two corpora with the same content freeze to identical
//	graphs regardless of insertion order.
//
// Errors:
//
//	ErrNilGraph       – nil *Graph passed where one is required
//	ErrEmptyPageID    – zero-length page ID
//	ErrPageNotFound   – unknown page ID
//	ErrSelfLink       – page linking to itself (strict mode, or Validate)
//	ErrUnknownTarget  – link to a page outside the corpus (strict mode, or Validate)
//	ErrEmptyGraph     – corpus/graph without pages
package core
