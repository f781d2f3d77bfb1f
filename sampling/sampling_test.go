package sampling_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/core"
	"github.com/katalvlaran/linkrank/rank"
	"github.com/katalvlaran/linkrank/sampling"
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

func TestRank_SeededIsReproducible(t *testing.T) {
	g := corpus0(t)

	r1, err := sampling.Rank(g, sampling.WithSeed(7), sampling.WithSamples(5000))
	require.NoError(t, err)
	r2, err := sampling.Rank(g, sampling.WithSeed(7), sampling.WithSamples(5000))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	r3, err := sampling.Rank(g, sampling.WithRand(rand.New(rand.NewSource(7))), sampling.WithSamples(5000))
	require.NoError(t, err)
	assert.Equal(t, r1, r3, "WithRand and WithSeed draw the same stream")
}

func TestRank_SumsToOneAndCoversAllPages(t *testing.T) {
	g := corpus0(t)
	for _, n := range []int{1, 2, 17, 1000} {
		r, err := sampling.Rank(g, sampling.WithSeed(1), sampling.WithSamples(n))
		require.NoError(t, err)
		assert.Len(t, r, g.Len())
		assert.InDelta(t, 1.0, r.Sum(), 1e-12, "n=%d", n)
		for p, v := range r {
			// Every estimate is k/n for an integer k.
			k := v * float64(n)
			assert.InDelta(t, float64(int(k+0.5)), k, 1e-9, "page %s", p)
		}
	}
}

func TestRank_SinglePage(t *testing.T) {
	g := mustGraph(t, map[string][]string{"only": nil})
	r, err := sampling.Rank(g, sampling.WithSamples(3))
	require.NoError(t, err)
	assert.Equal(t, rank.RankMap{"only": 1}, r)
}

func TestRank_TwoPageCycle(t *testing.T) {
	g := mustGraph(t, map[string][]string{"A": {"B"}, "B": {"A"}})
	r, err := sampling.Rank(g, sampling.WithSeed(3), sampling.WithSamples(20000))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r["A"], 0.02)
	assert.InDelta(t, 0.5, r["B"], 0.02)
}

func TestRank_DanglingTwoPage(t *testing.T) {
	g := mustGraph(t, map[string][]string{"A": {"B"}, "B": nil})
	r, err := sampling.Rank(g, sampling.WithSeed(11), sampling.WithSamples(40000))
	require.NoError(t, err)
	assert.InDelta(t, 0.3509, r["A"], 0.02)
	assert.InDelta(t, 0.6491, r["B"], 0.02)
}

func TestRank_ZeroDampingIsUniformish(t *testing.T) {
	g := corpus0(t)
	r, err := sampling.Rank(g, sampling.WithDamping(0), sampling.WithSeed(5), sampling.WithSamples(40000))
	require.NoError(t, err)
	for _, p := range g.Pages() {
		assert.InDelta(t, 0.25, r[p], 0.02, p)
	}
}

func TestRank_OnStep(t *testing.T) {
	g := corpus0(t)
	var steps []int
	seen := map[string]int{}
	r, err := sampling.Rank(g,
		sampling.WithSeed(2),
		sampling.WithSamples(50),
		sampling.WithOnStep(func(step int, page string) {
			steps = append(steps, step)
			seen[page]++
		}),
	)
	require.NoError(t, err)
	require.Len(t, steps, 50)
	for i, s := range steps {
		assert.Equal(t, i, s)
	}
	for p, c := range seen {
		assert.InDelta(t, float64(c)/50, r[p], 1e-12)
	}
}

func TestRank_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := sampling.Rank(corpus0(t), sampling.WithContext(ctx), sampling.WithSamples(5000), sampling.WithSeed(1))
	assert.Nil(t, r)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_Errors(t *testing.T) {
	g := corpus0(t)

	tests := []struct {
		name string
		g    *core.Graph
		opts []sampling.Option
		want []error
	}{
		{"ZeroSamples", g, []sampling.Option{sampling.WithSamples(0)}, []error{rank.ErrInvalidParameter}},
		{"NegativeSamples", g, []sampling.Option{sampling.WithSamples(-4)}, []error{rank.ErrInvalidParameter}},
		{"DampingTooHigh", g, []sampling.Option{sampling.WithDamping(1.5)}, []error{rank.ErrInvalidParameter}},
		{"DampingNegative", g, []sampling.Option{sampling.WithDamping(-0.01)}, []error{rank.ErrInvalidParameter}},
		{"NilGraph", nil, nil, []error{rank.ErrInvalidGraph, core.ErrNilGraph}},
		{"EmptyGraph", &core.Graph{}, nil, []error{rank.ErrInvalidGraph, core.ErrEmptyGraph}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := sampling.Rank(tc.g, tc.opts...)
			assert.Nil(t, r)
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	g := corpus0(b)
	for i := 0; i < b.N; i++ {
		_, _ = sampling.Rank(g, sampling.WithSeed(int64(i)), sampling.WithSamples(10000))
	}
}

func TestRank_FirstOptionErrorWins(t *testing.T) {
	_, err := sampling.Rank(corpus0(t), sampling.WithDamping(2), sampling.WithSamples(0))
	require.ErrorIs(t, err, rank.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "damping factor 2")

	_, err = sampling.Rank(corpus0(t), sampling.WithSamples(0), sampling.WithDamping(2))
	require.ErrorIs(t, err, rank.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "samples must be ≥ 1")
}
