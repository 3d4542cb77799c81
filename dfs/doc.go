// Package dfs implements depth-first search over a core.Graph, plus the
// two classic byproducts of a full DFS forest: cycle detection and
// topological ordering.
//
// DFS always traverses the whole graph, starting a fresh tree at every
// vertex not yet reached, in vertex insertion order. The Result carries
// both the finish order (the order vertices were fully explored) and a
// forest map recording each vertex's discovery depth and DFS parent.
//
// Two traversal engines produce identical results: the default
// recursive walker, and an explicit-stack variant selected with
// WithIterative for graphs deep enough to threaten the goroutine stack.
//
// Cycle detection uses three-color marking: an edge into an in-progress
// vertex is a back edge and closes a cycle. On undirected graphs the
// mirror record of the tree edge just taken would always look like such
// a back edge, so an in-progress neighbor that is the immediate DFS
// parent is ignored. The exception also swallows edges that genuinely
// return to the parent, so two-cycles (a directed pair u→v, v→u, or
// parallel undirected edges on a multigraph) go uncounted.
//
// TopologicalSort returns the reversed finish order. On cyclic input
// the result is not a valid ordering; run Cycles first when acyclicity
// is not known.
package dfs
