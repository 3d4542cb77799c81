// Package sssp computes single-source shortest paths over weighted
// core.Graphs with three interchangeable solvers.
//
//   - DAG relaxes edges in topological order. Linear time, but only
//     valid on directed acyclic graphs.
//   - Dijkstra processes vertices in increasing distance using an
//     indexed min-heap with true decrease-key. Requires non-negative
//     weights.
//   - BellmanFord sweeps every edge |V|-1 times. Slowest, but accepts
//     negative weights and detects negative cycles.
//
// All three return the same shape: a vmap.Map keyed by vertex ID whose
// entries carry the shortest known distance (vmap.Infinity when the
// vertex is unreachable) and the predecessor on that path. Paths are
// reconstructed from the map with Path.
//
// A negative cycle reachable from the source makes every distance
// meaningless, so BellmanFord signals it by returning the map emptied;
// Path reports ErrNegativeCycle on such a map.
//
// Unweighted graphs are rejected; hop-count distances are the bfs
// package's job.
package sssp
