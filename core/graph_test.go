package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/core"
)

// buildDiamond returns A→{B,C}, B→D, C→D, D dangling.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(map[string][]string{
		"A": {"C", "B"},
		"B": {"D"},
		"C": {"D"},
		"D": nil,
	})
	require.NoError(t, err)

	return g
}

func TestGraph_Indexing(t *testing.T) {
	g := buildDiamond(t)

	require.Equal(t, 4, g.Len())
	assert.Equal(t, 4, g.LinkCount())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Pages())

	for i, id := range g.Pages() {
		j, ok := g.Index(id)
		require.True(t, ok)
		assert.Equal(t, i, j)
		assert.Equal(t, id, g.Page(i))
	}
	_, ok := g.Index("missing")
	assert.False(t, ok)
}

func TestGraph_Adjacency(t *testing.T) {
	g := buildDiamond(t)

	assert.Equal(t, []int{1, 2}, g.Out(0), "out rows are sorted")
	assert.Equal(t, []int{3}, g.Out(1))
	assert.Equal(t, []int{1, 2}, g.In(3), "in rows are sorted")
	assert.Empty(t, g.In(0))
	assert.Equal(t, 2, g.OutDegree(0))

	assert.True(t, g.IsDangling(3))
	assert.False(t, g.IsDangling(0))
	assert.Equal(t, []int{3}, g.Dangling())
}

func TestGraph_OutLinks(t *testing.T) {
	g := buildDiamond(t)

	out, err := g.OutLinks("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, out)

	out, err = g.OutLinks("D")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = g.OutLinks("Z")
	assert.ErrorIs(t, err, core.ErrPageNotFound)
}

func TestGraph_PagesReturnsCopy(t *testing.T) {
	g := buildDiamond(t)
	p := g.Pages()
	p[0] = "mutated"
	assert.Equal(t, "A", g.Page(0))
}

func TestGraph_Validate(t *testing.T) {
	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.Validate(), core.ErrNilGraph)
	assert.ErrorIs(t, (&core.Graph{}).Validate(), core.ErrEmptyGraph)
	assert.NoError(t, buildDiamond(t).Validate())
}

func TestGraph_DeterministicAcrossInsertionOrder(t *testing.T) {
	c1 := core.NewCorpus()
	require.NoError(t, c1.AddLinks("x", "y", "z"))
	require.NoError(t, c1.AddLinks("y", "x"))
	require.NoError(t, c1.AddPage("z"))

	c2 := core.NewCorpus()
	require.NoError(t, c2.AddPage("z"))
	require.NoError(t, c2.AddLinks("y", "x"))
	require.NoError(t, c2.AddLinks("x", "z", "y"))

	g1, err := c1.Freeze()
	require.NoError(t, err)
	g2, err := c2.Freeze()
	require.NoError(t, err)

	assert.Equal(t, g1.AdjacencyList(), g2.AdjacencyList())
	assert.Equal(t, g1.Dangling(), g2.Dangling())
}
