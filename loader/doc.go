// Package loader reads and writes link-graph documents.
//
// Formats
//
//   - Edge list (FormatEdgeList): one link per line as "from to" or
//     "from,to". A line with a single token declares a page without
//     outlinks. Lines starting with "#" or "//" and blank lines are skipped.
//     Both ends of every link become pages.
//   - YAML and JSON (FormatYAML, FormatJSON): an adjacency document, shown
//     below. Every key is a page; values are link targets. Targets that are
//     not keys are pruned unless the corpus is strict.
//   - TOML (FormatTOML): the same document as a [pages] table.
//
// An adjacency document in YAML:
//
//	pages:
//	  1.html: [2.html]
//	  2.html: [1.html, 3.html]
//	  3.html: []
//
// Sources
//
//	Load accepts a local path or an http(s) URL; the format is taken from
//	WithFormat or detected from the file extension.
//
// Encode writes a frozen Graph back in any format; the output parses to an
// equal graph.
package loader
