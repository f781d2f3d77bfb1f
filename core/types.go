// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for link-graph construction and validation.
var (
	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyPageID indicates that a page ID is the empty string.
	ErrEmptyPageID = errors.New("core: page ID is empty")

	// ErrPageNotFound indicates an operation referenced a non-existent page.
	ErrPageNotFound = errors.New("core: page not found")

	// ErrSelfLink indicates a page linking to itself.
	ErrSelfLink = errors.New("core: self-link not allowed")

	// ErrUnknownTarget indicates a link whose target is not a page of the corpus.
	ErrUnknownTarget = errors.New("core: link target is not a page")

	// ErrEmptyGraph indicates a corpus or graph without pages.
	ErrEmptyGraph = errors.New("core: graph has no pages")
)

// CorpusOption configures a Corpus before use.
type CorpusOption func(c *Corpus)

// WithStrictLinks makes self-links and links to unknown pages errors instead
// of silently dropping them.
func WithStrictLinks() CorpusOption {
	return func(c *Corpus) { c.strict = true }
}

// Corpus is the mutable, thread-safe accumulator of pages and links.
//
// mu guards every field below it. links[from] holds the set of distinct
// targets of from; targets need not be pages yet (see Freeze).
type Corpus struct {
	mu sync.RWMutex

	strict bool // reject instead of drop

	pages     map[string]struct{}
	links     map[string]map[string]struct{}
	linkCount int
}

// NewCorpus creates an empty Corpus with the given options.
// By default the link policy is lenient (see package doc).
// Complexity: O(len(opts)).
func NewCorpus(opts ...CorpusOption) *Corpus {
	c := &Corpus{
		pages: make(map[string]struct{}),
		links: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Graph is the immutable, index-based link graph.
//
// ids[i] is the page with index i; ids is sorted ascending.
// out[i] and in[i] hold sorted page indices. dangling lists every i with
// len(out[i]) == 0, ascending.
type Graph struct {
	ids      []string
	index    map[string]int
	out      [][]int
	in       [][]int
	dangling []int
	links    int
}
