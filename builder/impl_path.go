// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits links i → i+1 for i = 0..n-2; page n-1 is dangling.

package builder

import "github.com/katalvlaran/linkrank/core"

// Path returns a Constructor that builds the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addPages(c, methodPath, cfg.idFn, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(c, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
