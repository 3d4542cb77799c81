package dfs

import (
	"fmt"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/vmap"
)

// walker encapsulates mutable state during a DFS forest traversal.
type walker struct {
	graph *core.Graph
	opts  options
	state map[int]int
	res   *Result
}

// DFS performs a depth-first traversal of the whole graph, starting a
// new tree at every undiscovered vertex in insertion order. Returns
// ErrGraphNil for a nil graph, or any error produced by a hook.
func DFS(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		state: make(map[int]int, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Forest: vmap.New(vmap.IntKey),
		},
	}

	for _, root := range g.VertexIDs() {
		if w.state[root] != white {
			continue
		}
		var err error
		if o.iterative {
			err = w.traverseIterative(root)
		} else {
			err = w.traverse(root, 0, vmap.NoPredecessor)
		}
		if err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// traverse recursively explores id at the given tree depth.
func (w *walker) traverse(id, depth, parent int) error {
	w.state[id] = gray
	w.res.Forest.Insert(id, int64(depth), parent)
	if err := w.opts.onVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %d: %w", id, err)
	}

	recs, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if w.state[rec.To] != white {
			continue
		}
		if err = w.traverse(rec.To, depth+1, id); err != nil {
			return err
		}
	}

	return w.finish(id)
}

// frame is one level of the explicit traversal stack: a vertex and the
// index of the next adjacency record to examine.
type frame struct {
	id   int
	next int
}

// traverseIterative replays traverse with an explicit stack, preserving
// hook and finish order exactly.
func (w *walker) traverseIterative(root int) error {
	w.state[root] = gray
	w.res.Forest.Insert(root, 0, vmap.NoPredecessor)
	if err := w.opts.onVisit(root); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %d: %w", root, err)
	}

	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		recs, err := w.graph.Neighbors(top.id)
		if err != nil {
			return err
		}
		if top.next < len(recs) {
			nbr := recs[top.next].To
			top.next++
			if w.state[nbr] != white {
				continue
			}
			w.state[nbr] = gray
			w.res.Forest.Insert(nbr, int64(len(stack)), top.id)
			if err = w.opts.onVisit(nbr); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %d: %w", nbr, err)
			}
			stack = append(stack, frame{id: nbr})

			continue
		}

		if err = w.finish(top.id); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// finish marks id fully explored and records it in finish order.
func (w *walker) finish(id int) error {
	w.state[id] = black
	if err := w.opts.onExit(id); err != nil {
		return fmt.Errorf("dfs: OnExit error at %d: %w", id, err)
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
