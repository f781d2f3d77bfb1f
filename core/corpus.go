// SPDX-License-Identifier: MIT
//
// File: corpus.go
// Role: Mutable page/link accumulator and the Freeze step to an immutable Graph.
//
// Concurrency:
//   - Every Corpus method takes c.mu; writers hold it exclusively.
//   - Freeze holds the read lock for the whole snapshot, so a concurrent
//     AddLink either lands entirely before or entirely after it.

package core

import (
	"fmt"
	"sort"
)

// AddPage inserts a page if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyPageID).
//   - Stage 2: Under the write lock, register the page and its (empty) link set.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (c *Corpus) AddPage(id string) error {
	if id == "" {
		return ErrEmptyPageID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.addPageLocked(id)

	return nil
}

// addPageLocked registers id; caller holds c.mu for writing.
func (c *Corpus) addPageLocked(id string) {
	if _, ok := c.pages[id]; ok {
		return
	}
	c.pages[id] = struct{}{}
	if c.links[id] == nil {
		c.links[id] = make(map[string]struct{})
	}
}

// AddLink records the link from → to. The source page is created if missing;
// the target is not, because it may be added later or never (see Freeze).
//
// Implementation:
//   - Stage 1: Validate both IDs (ErrEmptyPageID).
//   - Stage 2: Self-link → ErrSelfLink in strict mode; otherwise only make sure
//     the source page exists and return.
//   - Stage 3: Under the write lock, insert the target into from's link set.
//     Duplicate links are collapsed; a link set has set semantics.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (c *Corpus) AddLink(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyPageID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if from == to {
		if c.strict {
			return fmt.Errorf("%w: %q", ErrSelfLink, from)
		}
		c.addPageLocked(from)
		return nil
	}

	c.addPageLocked(from)
	if _, dup := c.links[from][to]; dup {
		return nil
	}
	c.links[from][to] = struct{}{}
	c.linkCount++

	return nil
}

// AddLinks records from → t for every t in to, stopping at the first error.
// With no targets it only adds the page, so AddLinks("A") declares a
// dangling page.
func (c *Corpus) AddLinks(from string, to ...string) error {
	if len(to) == 0 {
		return c.AddPage(from)
	}
	for _, t := range to {
		if err := c.AddLink(from, t); err != nil {
			return err
		}
	}

	return nil
}

// HasPage reports whether id was added as a page (empty ID ⇒ false).
func (c *Corpus) HasPage(id string) bool {
	if id == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.pages[id]

	return ok
}

// HasLink reports whether the link from → to was recorded.
func (c *Corpus) HasLink(from, to string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.links[from][to]

	return ok
}

// PageCount returns the number of pages.
func (c *Corpus) PageCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.pages)
}

// LinkCount returns the number of distinct recorded links, including links
// whose target is not (yet) a page.
func (c *Corpus) LinkCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.linkCount
}

// Pages returns all page IDs sorted ascending.
// Complexity: O(P log P).
func (c *Corpus) Pages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.pages))
	for id := range c.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// OutLinks returns the recorded link targets of id, sorted ascending.
// Returns ErrPageNotFound if id is not a page.
// Complexity: O(d log d).
func (c *Corpus) OutLinks(id string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.pages[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, id)
	}
	out := make([]string, 0, len(c.links[id]))
	for t := range c.links[id] {
		out = append(out, t)
	}
	sort.Strings(out)

	return out, nil
}

// Freeze validates the corpus and builds the immutable Graph.
//
// Implementation:
//   - Stage 1: Under the read lock, reject an empty corpus (ErrEmptyGraph).
//   - Stage 2: Assign dense indices in lexicographic ID order.
//   - Stage 3: Translate every link into index space. A target that is not a
//     page is pruned (lenient) or reported as ErrUnknownTarget (strict).
//   - Stage 4: Build sorted out/in adjacency and the dangling list.
//
// Behavior highlights:
//   - The Corpus stays usable; Freeze may be called again after more additions.
//   - The result shares no memory with the Corpus.
//
// Complexity:
//   - Time O(P log P + L log L), Space O(P + L).
func (c *Corpus) Freeze() (*Graph, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := len(c.pages)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	ids := make([]string, 0, n)
	for id := range c.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	g := &Graph{
		ids:   ids,
		index: index,
		out:   make([][]int, n),
		in:    make([][]int, n),
	}

	inDeg := make([]int, n)
	for i, id := range ids {
		targets := c.links[id]
		row := make([]int, 0, len(targets))
		for t := range targets {
			j, ok := index[t]
			if !ok {
				if c.strict {
					return nil, fmt.Errorf("%w: %q → %q", ErrUnknownTarget, id, t)
				}
				continue
			}
			row = append(row, j)
			inDeg[j]++
		}
		sort.Ints(row)
		g.out[i] = row
		g.links += len(row)
	}

	for j := range g.in {
		g.in[j] = make([]int, 0, inDeg[j])
	}
	// Visiting sources in ascending order keeps every in[j] sorted.
	for i, row := range g.out {
		if len(row) == 0 {
			g.dangling = append(g.dangling, i)
		}
		for _, j := range row {
			g.in[j] = append(g.in[j], i)
		}
	}

	return g, nil
}

// FromAdjacency builds a Graph from a page → outlinks map in one call.
// Every key becomes a page; values are link targets.
//
// Example:
//
//	g, err := core.FromAdjacency(map[string][]string{
//	    "1.html": {"2.html"},
//	    "2.html": {"1.html", "3.html"},
//	    "3.html": nil,
//	})
func FromAdjacency(adj map[string][]string, opts ...CorpusOption) (*Graph, error) {
	c := NewCorpus(opts...)
	for from, targets := range adj {
		if err := c.AddLinks(from, targets...); err != nil {
			return nil, err
		}
	}

	return c.Freeze()
}
