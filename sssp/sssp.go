package sssp

import (
	"errors"
	"fmt"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/dfs"
	"github.com/velmaran/graphium/minheap"
	"github.com/velmaran/graphium/vmap"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("sssp: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("sssp: source vertex not found")

	// ErrUnweightedGraph is returned when no edge carries a weight.
	ErrUnweightedGraph = errors.New("sssp: graph is unweighted")

	// ErrNegativeWeight is returned by Dijkstra on negative edge weights.
	ErrNegativeWeight = errors.New("sssp: negative edge weight")

	// ErrNegativeCycle is returned by Path when the result map was
	// voided by a reachable negative cycle.
	ErrNegativeCycle = errors.New("sssp: negative cycle reachable from source")

	// ErrUnreachable is returned by Path when no path reaches dest.
	ErrUnreachable = errors.New("sssp: vertex unreachable from source")
)

// prepare validates the inputs and seeds a distance map holding one
// entry per vertex: Infinity everywhere except the source.
func prepare(g *core.Graph, source int) (*vmap.Map[int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	m := vmap.New(vmap.IntKey)
	for _, id := range g.VertexIDs() {
		m.Insert(id, vmap.Infinity, vmap.NoPredecessor)
	}
	m.Find(source).Dist = 0

	return m, nil
}

// relax attempts to improve the tentative distance of rec.To through u.
// A vertex at Infinity cannot improve anything, and ties do not count
// as improvements.
func relax(u int, rec core.EdgeRecord, m *vmap.Map[int]) bool {
	from := m.Find(u)
	if from.Dist == vmap.Infinity {
		return false
	}
	to := m.Find(rec.To)
	if cand := from.Dist + rec.Weight; cand < to.Dist {
		to.Dist = cand
		to.Pred = u

		return true
	}

	return false
}

// DAG computes shortest paths from source by relaxing each vertex's
// out-edges in topological order. Correct only on directed acyclic
// graphs; cyclic input silently yields distances that honor whichever
// edges the ordering happened to respect.
func DAG(g *core.Graph, source int) (*vmap.Map[int], error) {
	m, err := prepare(g, source)
	if err != nil {
		return nil, err
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	for _, u := range order {
		recs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			relax(u, rec, m)
		}
	}

	return m, nil
}

// Dijkstra computes shortest paths from source by repeatedly extracting
// the closest unsettled vertex from an indexed min-heap and relaxing
// its out-edges, restoring the heap invariant with a decrease-key after
// every improvement. Returns ErrNegativeWeight if any edge weight is
// negative.
func Dijkstra(g *core.Graph, source int) (*vmap.Map[int], error) {
	m, err := prepare(g, source)
	if err != nil {
		return nil, err
	}

	ids := g.VertexIDs()
	for _, u := range ids {
		recs, _ := g.Neighbors(u)
		for _, rec := range recs {
			if rec.Weight < 0 {
				return nil, fmt.Errorf("%w: %d→%d (%d)", ErrNegativeWeight, u, rec.To, rec.Weight)
			}
		}
	}

	h, err := minheap.New(m, ids)
	if err != nil {
		return nil, err
	}
	for h.Len() > 0 {
		u, _ := h.ExtractMin()
		if m.Find(u).Dist == vmap.Infinity {
			// Everything still in the heap is unreachable.
			break
		}
		recs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if relax(u, rec, m) {
				h.DecreaseKey(rec.To)
			}
		}
	}

	return m, nil
}

// BellmanFord computes shortest paths from source by sweeping every
// edge |V|-1 times. Negative weights are allowed; if a further sweep
// still improves some distance, a negative cycle is reachable and the
// result map is returned emptied.
func BellmanFord(g *core.Graph, source int) (*vmap.Map[int], error) {
	m, err := prepare(g, source)
	if err != nil {
		return nil, err
	}

	ids := g.VertexIDs()
	sweep := func() (bool, error) {
		changed := false
		for _, u := range ids {
			recs, err := g.Neighbors(u)
			if err != nil {
				return false, err
			}
			for _, rec := range recs {
				if relax(u, rec, m) {
					changed = true
				}
			}
		}

		return changed, nil
	}

	for i := 1; i < len(ids); i++ {
		changed, err := sweep()
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}

	// Detection sweep: any remaining improvement means a negative cycle.
	changed, err := sweep()
	if err != nil {
		return nil, err
	}
	if changed {
		m.Clear()
	}

	return m, nil
}

// Path reconstructs the source→dest vertex sequence from a result map
// by walking predecessor links back from dest. Returns ErrNegativeCycle
// on a voided map and ErrUnreachable when dest has no finite distance.
func Path(m *vmap.Map[int], dest int) ([]int, error) {
	if m.IsEmpty() {
		return nil, ErrNegativeCycle
	}
	e := m.Find(dest)
	if e == nil || e.Dist == vmap.Infinity {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}

	path := []int{dest}
	for e.Pred != vmap.NoPredecessor {
		path = append(path, e.Pred)
		e = m.Find(e.Pred)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
