// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Complete(1) is a single dangling page.
//   - Emits u→v for every ordered pair u ≠ v, i asc then j asc.

package builder

import "github.com/katalvlaran/linkrank/core"

// Complete returns a Constructor that links every page to every other page.
// Complexity: O(n²) links.
func Complete(n int) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addPages(c, methodComplete, cfg.idFn, 0, n)
		if err != nil {
			return err
		}
		for i, u := range ids {
			for j, v := range ids {
				if i == j {
					continue
				}
				if err = link(c, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
