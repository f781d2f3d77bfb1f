// SPDX-License-Identifier: MIT

// Package rank holds the vocabulary shared by every ranking engine in linkrank:
// the RankMap result type and the error kinds all engines report.
//
// What
//
//   - RankMap: page ID → estimated rank. Values are non-negative and sum to 1
//     (within floating-point tolerance) over every page of the ranked graph.
//   - Error kinds, as sentinels for errors.Is:
//   - ErrInvalidGraph     empty graph or broken structural invariant
//   - ErrInvalidPage      page unknown to the graph
//   - ErrInvalidParameter damping, sample count, tolerance or cap out of domain
//   - ErrNonConvergence   iteration cap exceeded (see NonConvergenceError)
//
// Why
//
//	The sampling and iterative engines are alternative estimators of the same
//	quantity. Sharing one result type and one error vocabulary lets callers
//	swap them, compare them (L1Distance, MaxDelta) and branch on failures
//	without caring which engine produced the value.
//
// Errors are detected before any computation starts; no engine ever returns a
// partial RankMap together with a non-nil error, except NonConvergenceError,
// which carries the last snapshot for diagnostics.
package rank
