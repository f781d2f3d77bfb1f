// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds pages via cfg.idFn in ascending index order (0..n-1).
//   - Emits links i → (i+1)%n for i = 0..n-1.
//
// Every page has in- and out-degree 1, so every page ranks exactly 1/n.

package builder

import "github.com/katalvlaran/linkrank/core"

// Cycle returns a Constructor that builds the directed ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addPages(c, methodCycle, cfg.idFn, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(c, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
