// SPDX-License-Identifier: MIT

package iterative

// State is the lifecycle phase of an iterative computation.
type State int

const (
	// Initialized means ranks hold the uniform start vector.
	Initialized State = iota
	// Iterating means at least one pass ran and some page still moved by
	// more than the tolerance.
	Iterating
	// Converged means the last pass moved no page by more than the tolerance.
	Converged
)

// String returns the lower-case name of s.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}
