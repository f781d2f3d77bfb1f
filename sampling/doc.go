// Package sampling estimates PageRank by simulating the damped random surfer
// on a core.Graph and counting where it goes.
//
// What
//
//   - Rank(g, opts...) starts on a uniformly random page, then takes n-1 steps,
//     each drawn from transition.Row of the current page. Every visited page
//     (the start page included) is counted; the estimate is count/n.
//   - The result sums to exactly n/n = 1 up to float rounding.
//
// Randomness
//
//	The random source is injectable (WithRand) or derived from a seed
//	(WithSeed). With neither, a time-seeded source is used, so repeated calls
//	differ. A *rand.Rand is not goroutine-safe: never share one between
//	concurrent calls.
//
// Selection
//
//	The next page is chosen by one uniform variate u ∈ [0,1) and a cumulative
//	scan over the transition row in page-index order. Because page indices
//	follow sorted page IDs, a fixed seed reproduces the same walk on every
//	platform.
//
// Cancellation
//
//	WithContext is checked every 1024 steps. On cancellation Rank returns
//	ctx.Err() and no partial result.
//
// Complexity (N = pages, n = samples)
//
//   - Time:   O(n·N)  (one transition row per step)
//   - Memory: O(N)    (one reused row buffer and the visit counters)
//
// Usage
//
//	ranks, err := sampling.Rank(g,
//	    sampling.WithDamping(0.85),
//	    sampling.WithSamples(10000),
//	    sampling.WithSeed(42),
//	)
package sampling
