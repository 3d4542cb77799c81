package bfs

import (
	"fmt"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/vmap"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  options
	queue []int
	seen  *vmap.Map[int]
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options.
//
// The returned map holds one entry per reached vertex: Dist is the hop
// depth from source and Pred the vertex through which it was first
// discovered (vmap.NoPredecessor for the source itself). Unreached
// vertices have no entry.
//
// Returns ErrGraphNil or ErrSourceNotFound for invalid input, or any
// error produced by an OnVisit hook.
func BFS(g *core.Graph, source int, opts ...Option) (*vmap.Map[int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, g.VertexCount()),
		seen:  vmap.New(vmap.IntKey),
	}

	w.seen.Insert(source, 0, vmap.NoPredecessor)
	w.queue = append(w.queue, source)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.seen, nil
}

// loop processes the queue until empty or a hook aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]

		depth := int(w.seen.Find(id).Dist)
		if err := w.opts.onVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		recs, err := w.graph.Neighbors(id)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if w.seen.Find(rec.To) != nil {
				continue
			}
			w.seen.Insert(rec.To, int64(depth)+1, id)
			w.queue = append(w.queue, rec.To)
		}
	}

	return nil
}

// Reachable reports whether to can be reached from from. A destination
// that is not a vertex of g is reachable from nothing.
func Reachable(g *core.Graph, from, to int) (bool, error) {
	m, err := BFS(g, from)
	if err != nil {
		return false, err
	}

	return m.Find(to) != nil, nil
}

// Path reconstructs the source→dest vertex sequence from a BFS result
// map by walking predecessor links back from dest. Returns
// ErrUnreachable when dest has no entry in m.
func Path(m *vmap.Map[int], dest int) ([]int, error) {
	e := m.Find(dest)
	if e == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}

	path := []int{dest}
	for e.Pred != vmap.NoPredecessor {
		path = append(path, e.Pred)
		e = m.Find(e.Pred)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
