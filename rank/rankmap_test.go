package rank_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/rank"
)

func TestRankMap_SumAndSorted(t *testing.T) {
	m := rank.RankMap{"c": 0.2, "a": 0.5, "b": 0.3}

	assert.InDelta(t, 1.0, m.Sum(), 1e-12)
	assert.Equal(t, []rank.Entry{{Page: "a", Rank: 0.5}, {Page: "b", Rank: 0.3}, {Page: "c", Rank: 0.2}}, m.Sorted())
}

func TestRankMap_Top(t *testing.T) {
	m := rank.RankMap{"a": 0.25, "b": 0.25, "c": 0.4, "d": 0.1}

	assert.Equal(t, []rank.Entry{{Page: "c", Rank: 0.4}, {Page: "a", Rank: 0.25}}, m.Top(2))
	assert.Len(t, m.Top(0), 4, "k<=0 returns everything")
	assert.Len(t, m.Top(10), 4, "k>len returns everything")
}

func TestRankMap_Distances(t *testing.T) {
	a := rank.RankMap{"x": 0.5, "y": 0.5}
	b := rank.RankMap{"x": 0.4, "z": 0.6}

	// |0.5-0.4| + |0.5-0| + |0-0.6|
	assert.InDelta(t, 1.2, a.L1Distance(b), 1e-12)
	assert.InDelta(t, 1.2, b.L1Distance(a), 1e-12)
	assert.InDelta(t, 0.6, a.MaxDelta(b), 1e-12)
	assert.Zero(t, a.L1Distance(a.Clone()))
}

func TestRankMap_CloneIsIndependent(t *testing.T) {
	a := rank.RankMap{"x": 1}
	c := a.Clone()
	c["x"] = 0
	assert.Equal(t, 1.0, a["x"])
}

func TestValidateDamping(t *testing.T) {
	for _, d := range []float64{0, 0.5, 0.85, 1} {
		assert.NoError(t, rank.ValidateDamping(d), "d=%v", d)
	}
	for _, d := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, rank.ValidateDamping(d), rank.ErrInvalidParameter, "d=%v", d)
	}
}

func TestNonConvergenceError(t *testing.T) {
	var err error = &rank.NonConvergenceError{Iterations: 7, MaxDelta: 0.5, Last: rank.RankMap{"a": 1}}
	wrapped := fmt.Errorf("solve: %w", err)

	require.ErrorIs(t, wrapped, rank.ErrNonConvergence)
	var nc *rank.NonConvergenceError
	require.True(t, errors.As(wrapped, &nc))
	assert.Equal(t, 7, nc.Iterations)
	assert.Equal(t, rank.RankMap{"a": 1}, nc.Last)
	assert.Contains(t, err.Error(), "7 iterations")
}
