// Package bfs provides breadth-first search over a core.Graph.
//
// BFS explores vertices in increasing hop distance from a source vertex
// and records, for every reached vertex, its depth and the predecessor
// through which it was first discovered. Results live in a vmap.Map so
// the traversal tree can be walked back with bfs.Path.
//
// On unweighted graphs the recorded depths are exact shortest-path
// lengths; edge weights, if any, are ignored.
package bfs
