package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/dfs"
)

// assertTopological fails unless every directed edge of g points
// forward in order.
func assertTopological(t *testing.T, g *core.Graph, order []int) {
	t.Helper()
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, u := range g.VertexIDs() {
		recs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, rec := range recs {
			assert.Less(t, pos[u], pos[rec.To], "edge %d→%d points backward", u, rec.To)
		}
	}
}

func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := diamond(t)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1, 3}, order)
	assertTopological(t, g, order)
}

func TestTopologicalSort_LayeredDag(t *testing.T) {
	g, _ := core.NewGraph()
	for i := 0; i < 8; i++ {
		require.NoError(t, g.AddVertex(i, nil))
	}
	for _, e := range [][2]int{
		{0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 5}, {4, 5}, {5, 6}, {5, 7},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], core.WithEdgeDirected()))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 8)
	assertTopological(t, g, order)
}

func TestTopologicalSort_IsolatedVerticesIncluded(t *testing.T) {
	g, _ := core.NewGraph()
	for _, id := range []int{3, 7, 11} {
		require.NoError(t, g.AddVertex(id, nil))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 7, 11}, order)
}
