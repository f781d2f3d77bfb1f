// SPDX-License-Identifier: MIT
// Package: linkrank/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): rim of n-1 ≥ 3 pages plus the hub.
//   - Rim pages are idFn(0..n-2) linked as Cycle(n-1).
//   - Hub CenterPageID is linked both ways with every rim page.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkrank/core"
)

// Wheel returns a Constructor that builds a one-way rim plus a two-way hub.
func Wheel(n int) Constructor {
	return func(c *core.Corpus, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(c, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}

		return spokes(c, methodWheel, cfg.idFn, 0, n-1)
	}
}
