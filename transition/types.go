// SPDX-License-Identifier: MIT

package transition

import "sort"

// Distribution maps every page of a graph to the probability of stepping to it.
type Distribution map[string]float64

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}

	return s
}

// Pages returns the pages of d sorted ascending.
func (d Distribution) Pages() []string {
	out := make([]string, 0, len(d))
	for p := range d {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}
