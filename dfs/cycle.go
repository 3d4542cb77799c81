package dfs

import (
	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/vmap"
)

// cycleWalker tracks three-color state and DFS parents while hunting
// for back edges.
type cycleWalker struct {
	graph   *core.Graph
	state   map[int]int
	parent  map[int]int
	collect bool
	cycles  [][]int
	count   int
}

// CycleCount returns the number of back edges found by a full DFS of g,
// which is the number of independent cycles it closes. An in-progress
// neighbor that is the immediate DFS parent is not a back edge (it is
// the mirror of the tree edge on undirected graphs).
func CycleCount(g *core.Graph) (int, error) {
	w, err := detect(g, false)
	if err != nil {
		return 0, err
	}

	return w.count, nil
}

// Cycles enumerates the cycles closed by back edges, one vertex
// sequence per back edge. Each cycle starts at the back edge's target
// and follows tree edges down to its origin; a self-loop yields a
// single-vertex cycle. Returns nil when the graph is acyclic.
func Cycles(g *core.Graph) ([][]int, error) {
	w, err := detect(g, true)
	if err != nil {
		return nil, err
	}

	return w.cycles, nil
}

func detect(g *core.Graph, collect bool) (*cycleWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	w := &cycleWalker{
		graph:   g,
		state:   make(map[int]int, n),
		parent:  make(map[int]int, n),
		collect: collect,
	}

	for _, root := range g.VertexIDs() {
		if w.state[root] != white {
			continue
		}
		w.parent[root] = vmap.NoPredecessor
		if err := w.visit(root); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// visit explores id, recording a cycle for every back edge it meets.
func (w *cycleWalker) visit(id int) error {
	w.state[id] = gray

	recs, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		switch w.state[rec.To] {
		case white:
			w.parent[rec.To] = id
			if err = w.visit(rec.To); err != nil {
				return err
			}
		case gray:
			if rec.To == w.parent[id] {
				continue
			}
			w.count++
			if w.collect {
				w.cycles = append(w.cycles, w.extract(id, rec.To))
			}
		}
	}
	w.state[id] = black

	return nil
}

// extract walks parent links from the back edge's origin up to its
// target ancestor, returning the cycle ancestor-first.
func (w *cycleWalker) extract(from, ancestor int) []int {
	var rev []int
	for v := from; v != ancestor; v = w.parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, ancestor)

	cycle := make([]int, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return cycle
}
