// Package builder provides deterministic link-graph fixtures in the
// "functional-options" style: ring, chain, hub and random topologies that
// exercise the ranking engines from tests, examples and the command line.
//
// The package offers the following key components:
//
//   - Composition:
//     – Constructor:       a closure that adds pages and links to a core.Corpus.
//     – BuildGraph:        runs constructors in order and freezes the result.
//     – Topology:          looks a constructor up by name ("cycle", "star", …).
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the page-ID scheme.
//   - Page-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//   - Topologies (links are directed):
//     – Cycle(n):          0→1→…→n-1→0; every page ranks 1/n.
//     – Path(n):           0→1→…→n-1; the tail is dangling.
//     – Star(n):           Center⇄leaf for n-1 leaves.
//     – Wheel(n):          one-way rim of n-1 pages plus Center⇄rim spokes.
//     – Complete(n):       every ordered pair of distinct pages.
//     – RandomSparse(n,p): each ordered pair independently with probability p.
//
// Guarantees:
//
//   - Idempotent: re-running a constructor on the same corpus adds nothing,
//     because Corpus collapses duplicate pages and links.
//   - Deterministic: same options, seed and constructor order ⇒ same graph.
//   - Fast-fail on meaningless options via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithSymbolIDs()},
//	    builder.RandomSparse(10, 0.3),
//	)
package builder
