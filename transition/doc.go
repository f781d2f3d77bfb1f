// Package transition builds the one-step probability distribution of the
// damped random surfer on a core.Graph.
//
// What
//
//   - Model(g, page, d) returns a Distribution over every page of g.
//   - Row(g, i, d, dst) is the index-based form used by the sampling engine;
//     it fills a caller-owned buffer and allocates nothing when the buffer
//     is large enough.
//
// The surfer model
//
//	Let N = |pages| and out(p) the outlinks of p.
//
//	  out(p) = ∅  →  P(q) = 1/N for every q              (uniform jump)
//	  otherwise   →  P(q) = (1-d)/N + d/|out(p)|·[q ∈ out(p)]
//
//	The two rules are mutually exclusive: a dangling page gets no damping
//	split. Either way the row sums to 1 up to float rounding.
//
// Errors
//
//   - rank.ErrInvalidGraph     nil or empty graph (also wraps the core sentinel).
//   - rank.ErrInvalidPage      page not in g, or index out of range.
//   - rank.ErrInvalidParameter d outside [0,1] or NaN.
//
// Complexity
//
//   - Time O(N) per row, Space O(N) for the result.
package transition
