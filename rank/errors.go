// SPDX-License-Identifier: MIT

package rank

import (
	"errors"
	"fmt"
)

// Sentinel error kinds reported by every engine.
var (
	// ErrInvalidGraph indicates a nil or empty graph, or a graph whose
	// structural invariants (no self-links, no external targets) do not hold.
	ErrInvalidGraph = errors.New("rank: invalid graph")

	// ErrInvalidPage indicates a page that is not part of the graph.
	ErrInvalidPage = errors.New("rank: invalid page")

	// ErrInvalidParameter indicates a damping factor outside [0,1], a sample
	// count below 1, a non-positive tolerance or a negative iteration cap.
	ErrInvalidParameter = errors.New("rank: invalid parameter")

	// ErrNonConvergence indicates that an explicit iteration cap was reached
	// before every page settled within tolerance.
	ErrNonConvergence = errors.New("rank: did not converge")
)

// NonConvergenceError is returned when an iteration cap is exceeded.
// It carries the last computed ranks so callers can inspect how far
// the computation got.
type NonConvergenceError struct {
	// Iterations is the number of full passes that were executed.
	Iterations int

	// MaxDelta is the largest per-page change observed in the last pass.
	MaxDelta float64

	// Last is the rank snapshot produced by the final pass.
	Last RankMap
}

// Error implements error.
func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("rank: did not converge after %d iterations (max delta %.3g)", e.Iterations, e.MaxDelta)
}

// Unwrap makes errors.Is(err, ErrNonConvergence) hold.
func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// ValidateDamping reports ErrInvalidParameter unless 0 ≤ d ≤ 1.
// NaN is rejected as well.
func ValidateDamping(d float64) error {
	if !(d >= 0 && d <= 1) {
		return fmt.Errorf("%w: damping factor %v not in [0,1]", ErrInvalidParameter, d)
	}
	return nil
}
