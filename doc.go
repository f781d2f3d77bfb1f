// Package linkrank estimates how important every page of a link graph is,
// in two independent ways that agree with each other.
//
// 🚀 What is linkrank?
//
//	A small, thread-safe PageRank toolkit that brings together:
//		• Graph model: collect pages & links, freeze into an immutable index
//		• Transition model: the damped random surfer's next-page distribution
//		• Sampling: Monte-Carlo random walk with an injectable random source
//		• Iteration: fixed-point solver with dangling-page correction
//		• Loaders: edge lists, YAML, JSON and TOML graph documents
//		• Fixtures: cycle, path, star, complete, wheel and random topologies
//
// ✨ Why two engines?
//
//   - Sampling is simple and honest about noise; iteration is exact and fast.
//   - Both spread a dangling page's rank over every page, so on the same
//     graph they estimate the same stationary distribution.
//   - Running both is the cheapest end-to-end self-check there is.
//
// Under the hood:
//
//	core/        Corpus (mutable, locked) and Graph (immutable, index-based)
//	transition/  Model and Row: one step of the random surfer
//	sampling/    random-walk estimator
//	iterative/   power-iteration estimator with State and Result
//	rank/        RankMap and the shared error kinds
//	builder/     deterministic fixture graphs
//	loader/      graph documents in and out
//
// Quick ASCII example:
//
//	    A ──► B        A = 1/(2+d) ≈ 0.3509
//	                   B = (1+d)/(2+d) ≈ 0.6491   (d = 0.85)
//
//	B has no outlinks, so the surfer leaves it uniformly at random.
//
// This package offers the two one-call entry points, SampleRank and
// IterateRank, with explicit defaults. The engine packages expose the full
// option sets (contexts, callbacks, custom random sources).
//
//	go get github.com/katalvlaran/linkrank
package linkrank
