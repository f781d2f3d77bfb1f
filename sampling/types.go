// SPDX-License-Identifier: MIT

package sampling

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linkrank/rank"
)

// Defaults used when the corresponding option is not supplied.
const (
	DefaultDamping = 0.85
	DefaultSamples = 10000
)

// cancelCheckEvery is the step interval between context checks.
const cancelCheckEvery = 1024

// Option configures Rank via functional arguments.
// An invalid Option is recorded and surfaced as rank.ErrInvalidParameter
// when Rank is invoked.
type Option func(*Options)

// Options holds the parameters of one sampling run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Damping is the probability of following an outlink.
	Damping float64

	// Samples is the number of recorded pages n (≥ 1).
	Samples int

	// Rand is the random source. Nil means "time-seeded".
	Rand *rand.Rand

	// OnStep, if set, is called once per recorded page with its 0-based step
	// number and page ID.
	OnStep func(step int, page string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with damping 0.85, 10000 samples, a
// background context and no random source.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Damping: DefaultDamping,
		Samples: DefaultSamples,
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

// WithSamples sets the number of recorded pages.
//
//	n ≥ 1: record n pages
//	n < 1: invalid option → rank.ErrInvalidParameter
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: samples must be ≥ 1 (got %d)", rank.ErrInvalidParameter, n))
			return
		}
		o.Samples = n
	}
}

// WithSeed makes the run deterministic with the given seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnStep registers a per-step callback.
func WithOnStep(fn func(step int, page string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// fail records err unless an earlier option already failed.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
