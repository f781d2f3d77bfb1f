// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub page has the fixed ID CenterPageID.
//   - Leaves are idFn(1..n-1); links Center→leaf and leaf→Center per leaf.

package builder

import "github.com/katalvlaran/linkrank/core"

// Star returns a Constructor that builds a hub with n-1 leaves, linked both ways.
func Star(n int) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		return spokes(c, methodStar, cfg.idFn, 1, n)
	}
}

// spokes adds the hub and links it both ways with leaves idFn(from..to-1).
func spokes(c *core.Corpus, method string, idFn IDFn, from, to int) error {
	if _, err := addPages(c, method, func(int) string { return CenterPageID }, 0, 1); err != nil {
		return err
	}
	leaves, err := addPages(c, method, idFn, from, to)
	if err != nil {
		return err
	}
	for _, leaf := range leaves {
		if err = link(c, method, CenterPageID, leaf); err != nil {
			return err
		}
		if err = link(c, method, leaf, CenterPageID); err != nil {
			return err
		}
	}

	return nil
}
