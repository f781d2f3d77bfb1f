// Package builder defines shared constants used by fixture constructors.
package builder

// Canonical constructor names, used to prefix errors with context.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// CenterPageID is the fixed ID of the hub page in Star and Wheel.
const CenterPageID = "Center"

// Minimum page counts. Below these a topology has no links, or (Wheel) no rim
// cycle.
const (
	MinCycleNodes        = 2
	MinPathNodes         = 2
	MinStarNodes         = 2
	MinWheelNodes        = 4
	MinCompleteNodes     = 1
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
