// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(copts, bopts, cons...). Creates a Corpus,
//     resolves cfg, runs cons in order, then freezes.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkrank/core"
)

// Constructor adds a deterministic set of pages and links to c using the
// resolved builderConfig. Constructors validate parameters before touching c
// and return sentinel errors; they never panic.
type Constructor func(c *core.Corpus, cfg builderConfig) error

// BuildGraph creates a Corpus with corpus options copts, resolves the builder
// configuration from bopts, applies all constructors in order and freezes the
// result into an immutable core.Graph.
//
// Errors:
//   - Constructor errors are wrapped as "BuildGraph: %w"; branch with
//     errors.Is against ErrTooFewVertices, ErrInvalidProbability, ...
//   - A nil constructor yields ErrConstructFailed.
//   - Freeze errors (e.g. core.ErrEmptyGraph with no constructors) pass through.
//
// Complexity:
//   - O(len(bopts)) to resolve options plus Σ cost of each constructor plus
//     one Freeze.
func BuildGraph(copts []core.CorpusOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	c := core.NewCorpus(copts...)
	if err := Apply(c, bopts, cons...); err != nil {
		return nil, err
	}

	return c.Freeze()
}

// Apply runs constructors against an existing corpus, e.g. to overlay a
// random graph on top of a ring.
func Apply(c *core.Corpus, bopts []BuilderOption, cons ...Constructor) error {
	if c == nil {
		return fmt.Errorf("BuildGraph: nil corpus: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}
