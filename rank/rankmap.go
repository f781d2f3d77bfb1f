// SPDX-License-Identifier: MIT

package rank

import (
	"math"
	"sort"
)

// RankMap maps a page ID to its estimated rank.
type RankMap map[string]float64

// Entry is one (page, rank) pair of a RankMap.
type Entry struct {
	Page string
	Rank float64
}

// Sum returns the total mass of the map.
// Complexity: O(N).
func (m RankMap) Sum() float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}

// Sorted returns the entries ordered by page ID ascending.
// This is the order results are presented in.
// Complexity: O(N log N).
func (m RankMap) Sorted() []Entry {
	out := make([]Entry, 0, len(m))
	for p, r := range m {
		out = append(out, Entry{Page: p, Rank: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Page < out[j].Page })
	return out
}

// Top returns the k highest-ranked entries, ties broken by page ID.
// k ≤ 0 or k > len(m) returns every entry.
// Complexity: O(N log N).
func (m RankMap) Top(k int) []Entry {
	out := m.Sorted()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank > out[j].Rank })
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// L1Distance returns Σ|m[p] - other[p]| over the union of both key sets.
// A page missing from one side counts as rank 0 there.
func (m RankMap) L1Distance(other RankMap) float64 {
	var d float64
	for p, v := range m {
		d += math.Abs(v - other[p])
	}
	for p, v := range other {
		if _, ok := m[p]; !ok {
			d += math.Abs(v)
		}
	}
	return d
}

// MaxDelta returns max|m[p] - other[p]| over the union of both key sets.
func (m RankMap) MaxDelta(other RankMap) float64 {
	var d float64
	for p, v := range m {
		d = math.Max(d, math.Abs(v-other[p]))
	}
	for p, v := range other {
		if _, ok := m[p]; !ok {
			d = math.Max(d, math.Abs(v))
		}
	}
	return d
}

// Clone returns an independent copy.
func (m RankMap) Clone() RankMap {
	out := make(RankMap, len(m))
	for p, v := range m {
		out[p] = v
	}
	return out
}
