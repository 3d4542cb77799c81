// Package core: mutation surface of the Graph store.
//
// This file implements vertex and edge insertion/removal. Growth follows
// table doubling: whenever a new vertex id reaches the adjacency capacity,
// the slot array doubles until the id fits, giving amortized O(1) vertex
// insertion. Undirected edges are stored as mirrored record pairs; an
// undirected self-loop on a pseudograph stores both records in the same
// slot, so one loop contributes two to the vertex degree.
package core

import "fmt"

// AddVertex inserts a new vertex with the given id and satellite value.
// Returns ErrNegativeID for negative ids and ErrDuplicateID if the id is
// already present; both leave the graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int, value any) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	if _, exists := g.index[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}

	v := &Vertex{ID: id, Value: value}
	g.vertices = append(g.vertices, v)
	g.index[id] = v

	// Table doubling on the adjacency array.
	for id >= len(g.adj) {
		grown := make([][]EdgeRecord, len(g.adj)*2)
		copy(grown, g.adj)
		g.adj = grown
	}

	return nil
}

// AddEdge creates an edge from 'from' to 'to', honoring per-call options:
// WithEdgeDirected stores a single record, the default stores a mirrored
// pair; WithEdgeWeight attaches a weight and latches the graph weighted.
//
// Returns ErrVertexNotFound if either endpoint is absent and
// ErrLoopNotAllowed for a self-loop on a non-pseudograph. Adding a
// duplicate edge to a non-multigraph is a silent no-op, not an error.
// Complexity: O(1) for multigraphs, O(deg) for the duplicate check otherwise.
func (g *Graph) AddEdge(from, to int, opts ...EdgeOption) error {
	var spec edgeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	if _, ok := g.index[from]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if _, ok := g.index[to]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && g.HasEdge(from, to) {
		return nil // duplicate simple edge: no-op
	}

	if spec.weighted {
		g.weighted = true
	}

	g.adj[from] = append(g.adj[from], EdgeRecord{To: to, Weight: spec.weight})
	if !spec.directed {
		// Mirror record; a self-loop mirrors into its own slot.
		g.adj[to] = append(g.adj[to], EdgeRecord{To: from, Weight: spec.weight})
	}

	return nil
}

// RemoveEdge deletes one edge from 'from' to 'to'. The default removes an
// undirected pair (record plus mirror); WithEdgeDirected removes a single
// record. On multigraphs, WithEdgeWeight selects which parallel edge goes;
// without it the first match is removed.
// Returns ErrVertexNotFound for absent endpoints, ErrEdgeNotFound if no
// record matched.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) RemoveEdge(from, to int, opts ...EdgeOption) error {
	var spec edgeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	if _, ok := g.index[from]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if _, ok := g.index[to]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	// Weight participates in matching only on multigraphs, where it
	// distinguishes parallel edges.
	matchWeight := spec.weighted && g.allowMulti
	if !g.removeFirst(from, to, matchWeight, spec.weight) {
		return ErrEdgeNotFound
	}
	if !spec.directed {
		g.removeFirst(to, from, matchWeight, spec.weight)
	}

	return nil
}

// removeFirst deletes the first record in slot 'from' targeting 'to'
// (and matching weight when requested), reporting whether one was found.
func (g *Graph) removeFirst(from, to int, matchWeight bool, w int64) bool {
	slot := g.adj[from]
	for i, rec := range slot {
		if rec.To != to {
			continue
		}
		if matchWeight && rec.Weight != w {
			continue
		}
		g.adj[from] = append(slot[:i], slot[i+1:]...)

		return true
	}

	return false
}

// RemoveVertex deletes the vertex and cascades over all incident edges:
// its own adjacency slot is cleared and every record targeting it is
// removed from the other slots.
// Returns ErrVertexNotFound if the id is absent.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int) error {
	if _, ok := g.index[id]; !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	// Drop all outgoing records at once.
	g.adj[id] = nil

	// Drop all incoming records across the remaining slots.
	for i := range g.adj {
		if len(g.adj[i]) == 0 {
			continue
		}
		kept := g.adj[i][:0]
		for _, rec := range g.adj[i] {
			if rec.To != id {
				kept = append(kept, rec)
			}
		}
		g.adj[i] = kept
	}

	// Remove from the membership list and index.
	for i, v := range g.vertices {
		if v.ID == id {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}
	delete(g.index, id)

	return nil
}

// SetValue replaces the satellite value of vertex id.
// Returns ErrVertexNotFound if the id is absent.
func (g *Graph) SetValue(id int, value any) error {
	v, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	v.Value = value

	return nil
}
