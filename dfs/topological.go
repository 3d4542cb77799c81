package dfs

import "github.com/velmaran/graphium/core"

// TopologicalSort returns the vertices of g in reverse finish order: on
// an acyclic graph, every edge u→v places u before v in the result.
//
// The order is only meaningful on acyclic input. Cyclic graphs still
// produce a permutation of the vertices, but no ordering can satisfy
// the edges of a cycle; call Cycles first when acyclicity is in doubt.
func TopologicalSort(g *core.Graph) ([]int, error) {
	res, err := DFS(g)
	if err != nil {
		return nil, err
	}

	order := res.Order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
