// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: each ordered pair (i,j), i ≠ j, becomes a link independently with
// probability p. Pages left without outlinks are dangling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: trials run i asc, j asc, one Float64 draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkrank/core"
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi graph.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addPages(c, methodRandomSparse, cfg.idFn, 0, n)
		if err != nil {
			return err
		}
		for i, u := range ids {
			for j, v := range ids {
				if i == j {
					continue
				}
				var hit bool
				switch {
				case rng == nil:
					hit = p == 1
				default:
					hit = rng.Float64() < p
				}
				if !hit {
					continue
				}
				if err = link(c, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
