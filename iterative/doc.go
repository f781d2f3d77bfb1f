// Package iterative computes PageRank as the fixed point of the damped
// random-surfer equation on a core.Graph.
//
// What
//
//	Starting from r(p) = 1/N, every pass computes for all pages p
//
//	  new(p) = (1-d)/N + d·( Σ_{q→p} r(q)/|out(q)|  +  D/N )
//
//	where D = Σ r(q) over dangling pages q. A page without outlinks spreads
//	its rank evenly over all N pages, exactly as the surfer in package
//	transition jumps uniformly from it. Since Σ r = 1 this is the stationary
//	equation of the sampling engine's Markov chain, so both engines estimate
//	the same ranks.
//
// Update discipline
//
//   - Synchronous: a pass reads only the previous snapshot and writes a
//     second buffer; the buffers are swapped after the pass.
//   - Convergence: every |new(p) - old(p)| ≤ tolerance in the same pass.
//   - Lifecycle: Initialized → Iterating → Converged (terminal).
//
// Termination
//
//	For d < 1 the update is a contraction and converges geometrically. For
//	d = 1 the chain may be periodic; Solve accepts it but reports
//	Result.Guaranteed = false, and only WithMaxIterations bounds the run.
//	Exceeding the cap yields *rank.NonConvergenceError with the last ranks.
//
// Complexity (N = pages, L = links, k = passes)
//
//   - Time:   O(k·(N + L))
//   - Memory: O(N)
//
// Usage
//
//	res, err := iterative.Solve(g,
//	    iterative.WithDamping(0.85),
//	    iterative.WithTolerance(0.001),
//	    iterative.WithMaxIterations(1000),
//	)
//	var nc *rank.NonConvergenceError
//	if errors.As(err, &nc) {
//	    // nc.Last holds the ranks of the final pass
//	}
package iterative
