// Package core: type declarations, sentinel errors, options, and the
// NewGraph constructor. Method implementations live in methods.go and
// queries.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates that a negative vertex id was supplied.
	ErrNegativeID = errors.New("core: vertex id must be non-negative")

	// ErrDuplicateID indicates that AddVertex was called with an id already
	// present in the graph. This is the one expected, recoverable failure of
	// the mutation surface.
	ErrDuplicateID = errors.New("core: duplicate vertex id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a removal referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph that
	// was not built as a pseudograph.
	ErrLoopNotAllowed = errors.New("core: self-loops require a pseudograph")

	// ErrLoopsRequireMulti indicates WithLoops was requested without
	// WithMultiEdges. Pseudographs are by definition multigraphs.
	ErrLoopsRequireMulti = errors.New("core: pseudographs must be multigraphs")
)

// initialAdjCap is the starting adjacency capacity; growth doubles from here
// and never shrinks.
const initialAdjCap = 8

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph and must be a small
// dense non-negative integer: the adjacency array grows to accommodate the
// largest id. Value carries arbitrary satellite data; no algorithm in this
// module reads or writes it.
type Vertex struct {
	// ID is the unique non-negative identifier for this Vertex.
	ID int

	// Value stores arbitrary user data.
	Value any
}

// EdgeRecord is one adjacency entry: an edge from the vertex owning the
// slot to the target vertex To. Undirected edges are stored as a mirrored
// pair of records; parallel edges as repeated records.
type EdgeRecord struct {
	// To is the target vertex id.
	To int

	// Weight is the edge cost. Zero on edges of unweighted graphs.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertex pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops, making the graph a pseudograph.
// Requires WithMultiEdges; NewGraph rejects the combination otherwise.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added or removed.
type EdgeOption func(*edgeSpec)

// edgeSpec accumulates per-call edge configuration.
type edgeSpec struct {
	weight   int64
	weighted bool
	directed bool
}

// WithEdgeWeight attaches a weight to the edge. The first weighted edge
// marks the whole graph weighted, permanently.
func WithEdgeWeight(w int64) EdgeOption {
	return func(s *edgeSpec) {
		s.weight = w
		s.weighted = true
	}
}

// WithEdgeDirected makes the edge one-way (a single adjacency record
// instead of the default mirrored pair).
func WithEdgeDirected() EdgeOption {
	return func(s *edgeSpec) { s.directed = true }
}

// Graph is the core in-memory graph store.
//
// adj is indexed by vertex id; a slot may be non-nil for ids that are no
// longer (or never were) vertices, in which case it is empty. vertices
// preserves insertion order for deterministic iteration; index backs O(1)
// membership checks.
type Graph struct {
	// Configuration flags
	allowMulti bool // parallel edges permitted
	allowLoops bool // self-loops permitted (pseudograph)
	weighted   bool // latched by the first weighted edge

	// Storage
	adj      [][]EdgeRecord // adjacency slots, capacity > max live id
	vertices []*Vertex      // membership list, insertion order
	index    map[int]*Vertex
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is simple: no parallel edges, no self-loops.
// Returns ErrLoopsRequireMulti if WithLoops is used without WithMultiEdges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		adj:   make([][]EdgeRecord, initialAdjCap),
		index: make(map[int]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.allowLoops && !g.allowMulti {
		return nil, ErrLoopsRequireMulti
	}

	return g, nil
}

// MultiEdges reports whether parallel edges are permitted.
func (g *Graph) MultiEdges() bool { return g.allowMulti }

// Looped reports whether self-loops are permitted (pseudograph).
func (g *Graph) Looped() bool { return g.allowLoops }

// Weighted reports whether any weighted edge has ever been added.
func (g *Graph) Weighted() bool { return g.weighted }

// Capacity returns the current adjacency capacity. Always greater than the
// largest live vertex id.
func (g *Graph) Capacity() int { return len(g.adj) }
