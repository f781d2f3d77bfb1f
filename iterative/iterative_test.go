package iterative_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/iterative"
	"github.com/katalvlaran/linkrank/rank"
)

func mustGraph(t testing.TB, adj map[string][]string) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

func corpus0(t testing.TB) *core.Graph {
	return mustGraph(t, map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {"2.html"},
	})
}

func TestSolve_SinglePage(t *testing.T) {
	res, err := iterative.Solve(mustGraph(t, map[string][]string{"only": nil}))
	require.NoError(t, err)
	require.Len(t, res.Ranks, 1)
	assert.InDelta(t, 1.0, res.Ranks["only"], 1e-12)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, iterative.Converged, res.State)
}

func TestSolve_TwoPageCycle(t *testing.T) {
	r, err := iterative.Rank(mustGraph(t, map[string][]string{"A": {"B"}, "B": {"A"}}))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r["A"], 1e-12)
	assert.InDelta(t, 0.5, r["B"], 1e-12)
}

func TestSolve_DanglingTwoPage(t *testing.T) {
	g := mustGraph(t, map[string][]string{"A": {"B"}, "B": nil})

	// Closed form: A = 1/(2+d), B = (1+d)/(2+d).
	r, err := iterative.Rank(g, iterative.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.InDelta(t, 1/2.85, r["A"], 1e-9)
	assert.InDelta(t, 1.85/2.85, r["B"], 1e-9)

	r, err = iterative.Rank(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.3509, r["A"], 0.001)
	assert.InDelta(t, 0.6491, r["B"], 0.001)
}

func TestSolve_SumsToOneAndIsDeterministic(t *testing.T) {
	g := corpus0(t)

	r1, err := iterative.Rank(g)
	require.NoError(t, err)
	r2, err := iterative.Rank(g)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.InDelta(t, 1.0, r1.Sum(), 1e-6)
	assert.Greater(t, r1["2.html"], r1["1.html"], "the hub outranks its neighbours")
}

func TestSolve_FixedPoint(t *testing.T) {
	g := corpus0(t)
	const d = 0.85
	res, err := iterative.Solve(g, iterative.WithDamping(d), iterative.WithTolerance(1e-12))
	require.NoError(t, err)

	// Plugging the result back into the equation must reproduce it.
	n := float64(g.Len())
	var dangling float64
	for _, q := range g.Dangling() {
		dangling += res.Ranks[g.Page(q)]
	}
	for p := 0; p < g.Len(); p++ {
		var pulled float64
		for _, q := range g.In(p) {
			pulled += res.Ranks[g.Page(q)] / float64(g.OutDegree(q))
		}
		want := (1-d)/n + d*(pulled+dangling/n)
		assert.InDelta(t, want, res.Ranks[g.Page(p)], 1e-9)
	}
}

func TestSolve_Metadata(t *testing.T) {
	var deltas []float64
	res, err := iterative.Solve(corpus0(t),
		iterative.WithOnIteration(func(iter int, maxDelta float64) {
			assert.Equal(t, len(deltas)+1, iter)
			deltas = append(deltas, maxDelta)
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, iterative.Converged, res.State)
	assert.True(t, res.Guaranteed)
	require.Len(t, deltas, res.Iterations)
	assert.Equal(t, deltas[len(deltas)-1], res.MaxDelta)
	assert.LessOrEqual(t, res.MaxDelta, iterative.DefaultTolerance)
	for i := 0; i < len(deltas)-1; i++ {
		assert.Greater(t, deltas[i], iterative.DefaultTolerance, "pass %d", i+1)
	}
}

func TestSolve_FullDampingIsNotGuaranteed(t *testing.T) {
	res, err := iterative.Solve(
		mustGraph(t, map[string][]string{"A": {"B"}, "B": {"A"}}),
		iterative.WithDamping(1),
	)
	require.NoError(t, err)
	assert.False(t, res.Guaranteed)
	assert.Equal(t, iterative.Converged, res.State)
}

func TestSolve_NonConvergence(t *testing.T) {
	res, err := iterative.Solve(corpus0(t),
		iterative.WithTolerance(1e-15),
		iterative.WithMaxIterations(2),
	)
	assert.Nil(t, res)
	require.ErrorIs(t, err, rank.ErrNonConvergence)

	var nc *rank.NonConvergenceError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, 2, nc.Iterations)
	assert.Greater(t, nc.MaxDelta, 1e-15)
	assert.Len(t, nc.Last, 4)
	assert.InDelta(t, 1.0, nc.Last.Sum(), 1e-9)
}

func TestSolve_PeriodicChainNeedsCap(t *testing.T) {
	// With d = 1 the star A⇄{B,C} has period 2: the uniform start flips
	// between (2/3, 1/6, 1/6) and (1/3, 1/3, 1/3) forever.
	g := mustGraph(t, map[string][]string{"A": {"B", "C"}, "B": {"A"}, "C": {"A"}})
	_, err := iterative.Solve(g, iterative.WithDamping(1), iterative.WithMaxIterations(50))

	var nc *rank.NonConvergenceError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, 50, nc.Iterations)
	assert.InDelta(t, 1.0/3, nc.MaxDelta, 1e-12)
}

func TestSolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := iterative.Solve(corpus0(t), iterative.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_Errors(t *testing.T) {
	g := corpus0(t)

	tests := []struct {
		name string
		g    *core.Graph
		opts []iterative.Option
		want []error
	}{
		{"DampingTooHigh", g, []iterative.Option{iterative.WithDamping(1.2)}, []error{rank.ErrInvalidParameter}},
		{"DampingNaN", g, []iterative.Option{iterative.WithDamping(math.NaN())}, []error{rank.ErrInvalidParameter}},
		{"ZeroTolerance", g, []iterative.Option{iterative.WithTolerance(0)}, []error{rank.ErrInvalidParameter}},
		{"NegativeTolerance", g, []iterative.Option{iterative.WithTolerance(-1)}, []error{rank.ErrInvalidParameter}},
		{"NegativeCap", g, []iterative.Option{iterative.WithMaxIterations(-1)}, []error{rank.ErrInvalidParameter}},
		{"NilGraph", nil, nil, []error{rank.ErrInvalidGraph, core.ErrNilGraph}},
		{"EmptyGraph", &core.Graph{}, nil, []error{rank.ErrInvalidGraph, core.ErrEmptyGraph}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := iterative.Solve(tc.g, tc.opts...)
			assert.Nil(t, res)
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", iterative.Initialized.String())
	assert.Equal(t, "iterating", iterative.Iterating.String())
	assert.Equal(t, "converged", iterative.Converged.String())
	assert.Equal(t, "unknown", iterative.State(42).String())
}

func BenchmarkSolve(b *testing.B) {
	c := core.NewCorpus()
	for i := 0; i < 2000; i++ {
		_ = c.AddLinks(string(rune(0x4e00+i)), string(rune(0x4e00+(i*7+1)%2000)), string(rune(0x4e00+(i*13+5)%2000)))
	}
	g, err := c.Freeze()
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = iterative.Solve(g, iterative.WithTolerance(1e-8))
	}
}

func TestSolve_FirstOptionErrorWins(t *testing.T) {
	_, err := iterative.Solve(corpus0(t),
		iterative.WithTolerance(0),
		iterative.WithDamping(-1),
		iterative.WithMaxIterations(-3),
	)
	require.ErrorIs(t, err, rank.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "tolerance must be > 0")

	_, err = iterative.Solve(corpus0(t), iterative.WithMaxIterations(-3), iterative.WithTolerance(0))
	require.ErrorIs(t, err, rank.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "max iterations cannot be negative")
}
