package scc

import (
	"errors"

	"github.com/velmaran/graphium/core"
	"github.com/velmaran/graphium/dfs"
	"github.com/velmaran/graphium/vmap"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("scc: graph is nil")

// Result holds the strongly connected components of a graph.
type Result struct {
	// Components lists each component's vertices in pass-two discovery
	// order. Components themselves are ordered so that every edge
	// between two components leaves an earlier one for a later one.
	Components [][]int

	// Membership maps each vertex to its component: Dist is the
	// component's index in Components, Pred the component's root (the
	// vertex that seeded its pass-two sweep).
	Membership *vmap.Map[int]
}

// SameComponent reports whether a and b belong to the same strongly
// connected component. Unknown vertices are in no component.
func (r *Result) SameComponent(a, b int) bool {
	ea, eb := r.Membership.Find(a), r.Membership.Find(b)

	return ea != nil && eb != nil && ea.Dist == eb.Dist
}

// StronglyConnectedComponents runs Kosaraju's algorithm on g.
// Returns ErrGraphNil for a nil graph. Undirected edges collapse both
// endpoints into one component, since their mirrored records survive
// transposition.
func StronglyConnectedComponents(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// Pass one: finish order on the original graph.
	fwd, err := dfs.DFS(g)
	if err != nil {
		return nil, err
	}

	res := &Result{Membership: vmap.New(vmap.IntKey)}
	rev := g.Transpose()

	// Pass two: sweep the transpose from highest finish rank down.
	for i := len(fwd.Order) - 1; i >= 0; i-- {
		root := fwd.Order[i]
		if res.Membership.Find(root) != nil {
			continue
		}
		comp := res.collect(rev, root, len(res.Components))
		res.Components = append(res.Components, comp)
	}

	return res, nil
}

// collect gathers every unassigned vertex reachable from root in the
// transpose, assigning each to component ordinal.
func (r *Result) collect(rev *core.Graph, root, ordinal int) []int {
	var comp []int
	stack := []int{root}
	r.Membership.Insert(root, int64(ordinal), root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, id)

		recs, _ := rev.Neighbors(id)
		for _, rec := range recs {
			if r.Membership.Find(rec.To) != nil {
				continue
			}
			r.Membership.Insert(rec.To, int64(ordinal), root)
			stack = append(stack, rec.To)
		}
	}

	return comp
}
