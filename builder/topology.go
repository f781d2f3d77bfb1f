// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// topologies maps a lower-case name to its constructor factory.
// p is only used by "random".
var topologies = map[string]func(n int, p float64) Constructor{
	"cycle":    func(n int, _ float64) Constructor { return Cycle(n) },
	"path":     func(n int, _ float64) Constructor { return Path(n) },
	"star":     func(n int, _ float64) Constructor { return Star(n) },
	"wheel":    func(n int, _ float64) Constructor { return Wheel(n) },
	"complete": func(n int, _ float64) Constructor { return Complete(n) },
	"random":   RandomSparse,
}

// Topology returns the constructor registered under name (case-insensitive).
// Returns ErrUnknownTopology for an unregistered name.
func Topology(name string, n int, p float64) (Constructor, error) {
	f, ok := topologies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTopology, name, strings.Join(TopologyNames(), ", "))
	}

	return f(n, p), nil
}

// TopologyNames lists the registered topology names, sorted.
func TopologyNames() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
