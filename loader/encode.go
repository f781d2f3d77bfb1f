// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkrank/core"
)

// Encode writes g to w in the given format.
//
// The edge list emits one "from to" line per link in page order and a lone
// "page" line for every page without outlinks, so dangling and isolated
// pages survive a round trip.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	if err := g.Validate(); err != nil {
		return err
	}

	switch format {
	case FormatEdgeList:
		bw := bufio.NewWriter(w)
		for i, id := range g.Pages() {
			if g.IsDangling(i) {
				fmt.Fprintln(bw, id)
				continue
			}
			for _, j := range g.Out(i) {
				fmt.Fprintf(bw, "%s %s\n", id, g.Page(j))
			}
		}
		return bw.Flush()
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Document{Pages: g.AdjacencyList()}); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Document{Pages: g.AdjacencyList()})
	case FormatTOML:
		return toml.NewEncoder(w).Encode(Document{Pages: g.AdjacencyList()})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
