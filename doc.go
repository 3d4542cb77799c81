// Package graphium is an in-memory engine for building and analyzing
// directed and undirected graphs over dense integer vertex ids.
//
// What graphium provides:
//
//	A single-threaded, batch-style library that brings together:
//		• Core store: mutable adjacency lists with multigraph, pseudograph
//		  and weighted variants, amortized O(1) growth, transpose
//		• Auxiliary map: the chained key→record index every algorithm uses
//		  for discovery order, distances and predecessors
//		• Traversals: BFS (level order, visitor hooks) and DFS
//		  (forest construction, finish order, edge classification)
//		• Decomposition: cycle detection/enumeration, topological sort,
//		  strongly connected components (Kosaraju)
//		• Shortest paths: DAG relaxation, Dijkstra with positional
//		  decrease-key, Bellman-Ford with negative-cycle detection
//
// Design notes:
//
//   - Algorithms never mutate the graph; all per-run bookkeeping lives in
//     a vmap.Map built for that invocation and returned to the caller
//   - Pure Go, no cgo; the only external dependency is the test toolkit
//   - Explicit fallible results - sentinel errors per package, no panics
//     for caller-triggerable conditions
//
// Package map:
//
//	core/    - Graph, Vertex, EdgeRecord and the mutation/query surface
//	vmap/    - auxiliary chained hash map with pluggable key conversion
//	minheap/ - position-aware binary min-heap keyed through a vmap.Map
//	bfs/     - breadth-first search, reachability, path reconstruction
//	dfs/     - depth-first search, cycles, topological sort
//	scc/     - strongly-connected-component decomposition
//	sssp/    - single-source shortest paths (DAG, Dijkstra, Bellman-Ford)
//
//	go get github.com/velmaran/graphium
package graphium
