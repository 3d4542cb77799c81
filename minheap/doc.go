// Package minheap implements the binary min-heap that backs Dijkstra's
// algorithm: a heap of vertex ids whose ordering key is not stored inline
// but resolved through a vmap.Map on every comparison.
//
// That indirection is the point. Relaxation mutates distances in the map
// out-of-band; the heap only reorders references, so after a successful
// relaxation the caller restores the invariant with DecreaseKey, which
// sifts the affected vertex upward from its current position. A side table
// (vertex id → heap position) is kept consistent on every swap, so
// DecreaseKey needs no search. It quietly ignores vertices that have
// already been extracted, which is exactly the stale-update case Dijkstra
// produces.
//
// Invariant: for every non-root slot i, key(parent(i)) ≤ key(i), where
// key(i) is the Dist of slot i's vertex in the backing map.
//
// Complexity: New O(n) (bottom-up heapify), ExtractMin and DecreaseKey
// O(log n), Contains and Min O(1).
package minheap
