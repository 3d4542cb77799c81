package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/dfs"
)

func TestCycleCount_NilGraph(t *testing.T) {
	_, err := dfs.CycleCount(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestCycleCount_AcyclicDirected(t *testing.T) {
	g := diamond(t)
	n, err := dfs.CycleCount(g)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCycleCount_UndirectedTreeHasNone(t *testing.T) {
	// The mirror record of each tree edge must not read as a back edge.
	g, _ := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddVertex(i, nil))
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	n, err := dfs.CycleCount(g)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCycles_DirectedTriangle(t *testing.T) {
	g, _ := core.NewGraph()
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, g.AddVertex(id, nil))
	}
	require.NoError(t, g.AddEdge(1, 2, core.WithEdgeDirected()))
	require.NoError(t, g.AddEdge(2, 3, core.WithEdgeDirected()))
	require.NoError(t, g.AddEdge(3, 1, core.WithEdgeDirected()))

	n, err := dfs.CycleCount(g)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cycles, err := dfs.Cycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []int{1, 2, 3}, cycles[0])
}

func TestCycles_UndirectedSquare(t *testing.T) {
	g, _ := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddVertex(i, nil))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cycles, err := dfs.Cycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, cycles[0])
}

func TestCycles_SelfLoop(t *testing.T) {
	g, err := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(0, nil))
	require.NoError(t, g.AddEdge(0, 0, core.WithEdgeDirected()))

	cycles, err := dfs.Cycles(g)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []int{0}, cycles[0])
}

func TestCycles_TwoIndependentCycles(t *testing.T) {
	g, _ := core.NewGraph()
	for i := 0; i < 6; i++ {
		require.NoError(t, g.AddVertex(i, nil))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], core.WithEdgeDirected()))
	}

	n, err := dfs.CycleCount(g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
