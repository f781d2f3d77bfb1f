// SPDX-License-Identifier: MIT

package iterative

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linkrank/rank"
)

// Defaults used when the corresponding option is not supplied.
const (
	DefaultDamping   = 0.85
	DefaultTolerance = 0.001
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as rank.ErrInvalidParameter
// when Solve is invoked.
type Option func(*Options)

// Options holds the parameters of one iterative run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pass.
	Ctx context.Context

	// Damping is the probability of following an outlink.
	Damping float64

	// Tolerance is the per-page convergence threshold (> 0).
	Tolerance float64

	// MaxIterations caps the number of passes. 0 means unbounded.
	MaxIterations int

	// OnIteration, if set, is called after every pass with the 1-based pass
	// number and the largest per-page change of that pass.
	OnIteration func(iter int, maxDelta float64)

	// internal error recorded during option parsing
	err error
}

// Result is the outcome of a converged run.
type Result struct {
	// Ranks is the converged rank of every page.
	Ranks rank.RankMap

	// Iterations is the number of passes executed.
	Iterations int

	// MaxDelta is the largest per-page change of the final pass.
	MaxDelta float64

	// State is the final lifecycle state (Converged on success).
	State State

	// Guaranteed reports whether termination was guaranteed by the
	// parameters (d < 1) rather than merely observed.
	Guaranteed bool
}

// DefaultOptions returns Options with damping 0.85, tolerance 0.001, no
// iteration cap and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Damping:   DefaultDamping,
		Tolerance: DefaultTolerance,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDamping sets the damping factor d ∈ [0,1].
func WithDamping(d float64) Option {
	return func(o *Options) {
		if err := rank.ValidateDamping(d); err != nil {
			o.fail(err)
			return
		}
		o.Damping = d
	}
}

// WithTolerance sets the convergence threshold; tol must be > 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.fail(fmt.Errorf("%w: tolerance must be > 0 (got %v)", rank.ErrInvalidParameter, tol))
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the number of passes.
//
//	k > 0: at most k passes, then *rank.NonConvergenceError
//	k == 0: explicit no cap
//	k < 0: invalid option → rank.ErrInvalidParameter
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.fail(fmt.Errorf("%w: max iterations cannot be negative (%d)", rank.ErrInvalidParameter, k))
			return
		}
		o.MaxIterations = k
	}
}

// WithOnIteration registers a per-pass callback.
func WithOnIteration(fn func(iter int, maxDelta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// fail records err unless an earlier option already failed.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
