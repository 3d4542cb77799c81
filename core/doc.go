// Package core defines the central Graph, Vertex, and EdgeRecord types and
// the mutation/query surface for building graphs over dense integer ids.
//
// The store is an adjacency-list representation: a growable array of edge
// slices indexed by vertex id, plus a membership list of vertices in
// insertion order. When a vertex id reaches the current capacity, the array
// doubles until it fits (amortized O(1) growth). Variants are selected at
// construction time:
//
//	NewGraph()                                 - simple graph
//	NewGraph(WithMultiEdges())                 - multigraph (parallel edges)
//	NewGraph(WithMultiEdges(), WithLoops())    - pseudograph (self-loops)
//
// Directedness is per edge: AddEdge stores a mirrored record pair by
// default and a single record under WithEdgeDirected. Weightedness is a
// latch - the first WithEdgeWeight edge marks the graph weighted
// permanently.
//
// The store is single-writer and unsynchronized: algorithm
// packages (bfs, dfs, scc, sssp) read it and keep their own bookkeeping in
// per-invocation vmap.Map instances, never mutating the graph.
//
// Errors:
//
//	ErrNegativeID        - vertex id is negative.
//	ErrDuplicateID       - vertex id already present (recoverable).
//	ErrVertexNotFound    - operation referenced an absent vertex.
//	ErrEdgeNotFound      - removal referenced an absent edge.
//	ErrLoopNotAllowed    - self-loop on a non-pseudograph.
//	ErrLoopsRequireMulti - WithLoops without WithMultiEdges.
package core
