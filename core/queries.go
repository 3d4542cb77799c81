// Package core: read-only query surface of the Graph store, plus the
// transpose constructor and the textual dump.
package core

import (
	"fmt"
	"io"
	"strings"
)

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether at least one edge from 'from' to 'to' exists.
// For an undirected edge either orientation answers true via its mirror.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	if _, ok := g.index[from]; !ok {
		return false
	}
	for _, rec := range g.adj[from] {
		if rec.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the adjacency records of vertex id. The returned slice
// is the live slot and must be treated as read-only by callers; algorithm
// packages only iterate it.
// Complexity: O(1).
func (g *Graph) Neighbors(id int) ([]EdgeRecord, error) {
	if _, ok := g.index[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.adj[id], nil
}

// Degree returns the number of adjacency records at the vertex's own slot.
// Under undirected semantics this is the classic degree: mirrored records
// count each incident edge once, and a pseudograph self-loop counts twice.
// Returns ErrVertexNotFound if the id is absent.
func (g *Graph) Degree(id int) (int, error) {
	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(g.adj[id]), nil
}

// OutDegree returns the number of records leaving the vertex's slot.
// Identical to Degree; provided for directed-graph readability.
func (g *Graph) OutDegree(id int) (int, error) {
	return g.Degree(id)
}

// InDegree returns the number of records across all slots that target id.
// Complexity: O(V + E).
func (g *Graph) InDegree(id int) (int, error) {
	if _, ok := g.index[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	in := 0
	for i := range g.adj {
		for _, rec := range g.adj[i] {
			if rec.To == id {
				in++
			}
		}
	}

	return in, nil
}

// Value returns the satellite value of vertex id.
func (g *Graph) Value(id int) (any, error) {
	v, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v.Value, nil
}

// Vertices returns the vertex list in insertion order. The slice is a
// copy; the Vertex pointers are the live structs.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexIDs returns all vertex ids in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []int {
	ids := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of adjacency records. Undirected
// edges contribute two (the record and its mirror).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.adj {
		n += len(g.adj[i])
	}

	return n
}

// Transpose produces a new graph with every record reversed and the vertex
// set (ids, values, insertion order) preserved. Undirected pairs transpose
// onto themselves, so transposing an undirected graph yields an equal graph.
// Complexity: O(V + E).
func (g *Graph) Transpose() *Graph {
	t := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		weighted:   g.weighted,
		adj:        make([][]EdgeRecord, len(g.adj)),
		vertices:   make([]*Vertex, 0, len(g.vertices)),
		index:      make(map[int]*Vertex, len(g.vertices)),
	}
	for _, v := range g.vertices {
		nv := &Vertex{ID: v.ID, Value: v.Value}
		t.vertices = append(t.vertices, nv)
		t.index[nv.ID] = nv
	}
	// Records are appended directly rather than via AddEdge so that
	// multiplicity survives reversal untouched.
	for from := range g.adj {
		for _, rec := range g.adj[from] {
			t.adj[rec.To] = append(t.adj[rec.To], EdgeRecord{To: from, Weight: rec.Weight})
		}
	}

	return t
}

// Dump writes a textual rendering of the store to w: a header line with
// counts and flags, then one line per adjacency slot in id order. Empty
// slots render as a backslash.
func (g *Graph) Dump(w io.Writer) {
	fmt.Fprintf(w, "vertices: %d\tcapacity: %d\tmultigraph: %t\tpseudograph: %t\tweighted: %t\n",
		len(g.vertices), len(g.adj), g.allowMulti, g.allowLoops, g.weighted)

	for i := range g.adj {
		if len(g.adj[i]) == 0 {
			fmt.Fprintf(w, "%d:-> \\\n", i)
			continue
		}
		fmt.Fprintf(w, "%d:-> ", i)
		for _, rec := range g.adj[i] {
			if g.weighted {
				fmt.Fprintf(w, "(%d: %d)->", rec.To, rec.Weight)
			} else {
				fmt.Fprintf(w, "(%d)->", rec.To)
			}
		}
		fmt.Fprintln(w)
	}
}

// String renders the store as Dump does.
func (g *Graph) String() string {
	var b strings.Builder
	g.Dump(&b)

	return b.String()
}
