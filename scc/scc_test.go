package scc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/scc"
)

// condensed builds the classic four-component fixture:
// {1,2,5} → {3,4} → {6,7} → {8}, with 8 carrying a self-loop.
func condensed(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, err)
	for id := 1; id <= 8; id++ {
		require.NoError(t, g.AddVertex(id, nil))
	}
	for _, e := range [][2]int{
		{1, 2}, {2, 3}, {2, 5}, {2, 6}, {3, 4}, {3, 7}, {4, 3},
		{4, 8}, {5, 1}, {5, 6}, {6, 7}, {7, 6}, {7, 8}, {8, 8},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], core.WithEdgeDirected()))
	}

	return g
}

func TestStronglyConnectedComponents_NilGraph(t *testing.T) {
	_, err := scc.StronglyConnectedComponents(nil)
	assert.ErrorIs(t, err, scc.ErrGraphNil)
}

func TestStronglyConnectedComponents_ClassicFixture(t *testing.T) {
	g := condensed(t)
	res, err := scc.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 4)

	byMember := func(id int) []int {
		e := res.Membership.Find(id)
		require.NotNil(t, e, "vertex %d unassigned", id)
		return res.Components[e.Dist]
	}
	assert.ElementsMatch(t, []int{1, 2, 5}, byMember(1))
	assert.ElementsMatch(t, []int{3, 4}, byMember(3))
	assert.ElementsMatch(t, []int{6, 7}, byMember(6))
	assert.ElementsMatch(t, []int{8}, byMember(8))

	// Condensation edges must point from earlier to later components.
	ord := func(id int) int64 { return res.Membership.Find(id).Dist }
	assert.Less(t, ord(1), ord(3))
	assert.Less(t, ord(3), ord(6))
	assert.Less(t, ord(6), ord(8))
}

func TestStronglyConnectedComponents_Membership(t *testing.T) {
	g := condensed(t)
	res, err := scc.StronglyConnectedComponents(g)
	require.NoError(t, err)

	assert.True(t, res.SameComponent(1, 5))
	assert.True(t, res.SameComponent(3, 4))
	assert.False(t, res.SameComponent(1, 8))
	assert.False(t, res.SameComponent(2, 99))

	// Every member points at its sweep root.
	for _, comp := range res.Components {
		root := comp[0]
		for _, id := range comp {
			assert.Equal(t, root, res.Membership.Find(id).Pred)
		}
	}
}

func TestStronglyConnectedComponents_DagIsAllSingletons(t *testing.T) {
	g, _ := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddVertex(i, nil))
	}
	require.NoError(t, g.AddEdge(0, 1, core.WithEdgeDirected()))
	require.NoError(t, g.AddEdge(1, 2, core.WithEdgeDirected()))
	require.NoError(t, g.AddEdge(2, 3, core.WithEdgeDirected()))

	res, err := scc.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 4)
	for _, comp := range res.Components {
		assert.Len(t, comp, 1)
	}
}

func TestStronglyConnectedComponents_UndirectedEdgeMerges(t *testing.T) {
	g, _ := core.NewGraph()
	require.NoError(t, g.AddVertex(0, nil))
	require.NoError(t, g.AddVertex(1, nil))
	require.NoError(t, g.AddEdge(0, 1))

	res, err := scc.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
	assert.True(t, res.SameComponent(0, 1))
}
