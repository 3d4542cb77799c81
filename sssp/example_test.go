package sssp_test

import (
	"fmt"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/sssp"
)

// ExampleDijkstra builds a small weighted road network and extracts the
// cheapest route between its corners.
func ExampleDijkstra() {
	g, _ := core.NewGraph()
	for id := 0; id <= 6; id++ {
		_ = g.AddVertex(id, nil)
	}
	for _, e := range []struct {
		from, to int
		w        int64
	}{
		{0, 1, 1}, {0, 2, 2}, {1, 5, 2}, {2, 4, 1},
		{4, 6, 1}, {5, 6, 4}, {1, 3, 5}, {4, 3, 2},
	} {
		_ = g.AddEdge(e.from, e.to, core.WithEdgeDirected(), core.WithEdgeWeight(e.w))
	}

	m, _ := sssp.Dijkstra(g, 0)
	path, _ := sssp.Path(m, 6)

	fmt.Println("cost:", m.Find(6).Dist)
	fmt.Println("route:", path)
	// Output:
	// cost: 4
	// route: [0 2 4 6]
}
