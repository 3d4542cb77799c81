// Package minheap: heap construction and maintenance. The ordering key of
// every vertex lives in the backing vmap.Map and is re-read on each
// comparison; the heap itself stores only vertex ids and positions.
package minheap

import (
	"errors"
	"fmt"

	"github.com/velmaran/graphium/vmap"
)

// ErrKeyNotFound indicates that a heap vertex has no entry in the backing
// map, so its ordering key cannot be resolved.
var ErrKeyNotFound = errors.New("minheap: vertex has no entry in backing map")

// Heap is a binary min-heap over vertex ids ordered by their Dist in the
// backing map. Create one with New; the zero value is not usable.
type Heap struct {
	keys *vmap.Map[int]
	ids  []int       // heap array of vertex ids
	pos  map[int]int // vertex id → current heap position
}

// New builds a heap over ids, heapified bottom-up against the keys
// currently resident in the map. Every id must have a map entry;
// otherwise ErrKeyNotFound is returned.
// Complexity: O(n).
func New(keys *vmap.Map[int], ids []int) (*Heap, error) {
	h := &Heap{
		keys: keys,
		ids:  append([]int(nil), ids...),
		pos:  make(map[int]int, len(ids)),
	}
	for i, id := range h.ids {
		if keys.Find(id) == nil {
			return nil, fmt.Errorf("%w: %d", ErrKeyNotFound, id)
		}
		h.pos[id] = i
	}
	for i := len(h.ids)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Len returns the number of ids still in the heap. O(1).
func (h *Heap) Len() int { return len(h.ids) }

// Min returns the root vertex id without removing it.
// The second return is false on an empty heap.
func (h *Heap) Min() (int, bool) {
	if len(h.ids) == 0 {
		return 0, false
	}

	return h.ids[0], true
}

// Contains reports whether the vertex is still in the heap. O(1).
func (h *Heap) Contains(id int) bool {
	_, ok := h.pos[id]

	return ok
}

// ExtractMin swaps the root with the last slot, shrinks the heap, sifts
// the moved vertex down, and returns the old root. The extracted vertex
// leaves the position table, so later DecreaseKey calls for it are no-ops.
// The second return is false on an empty heap.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (int, bool) {
	if len(h.ids) == 0 {
		return 0, false
	}
	min := h.ids[0]
	last := len(h.ids) - 1
	h.swap(0, last)
	h.ids = h.ids[:last]
	delete(h.pos, min)
	if last > 0 {
		h.siftDown(0)
	}

	return min, true
}

// DecreaseKey restores the heap invariant after the vertex's Dist in the
// backing map was lowered: it walks upward from the vertex's current
// position, swapping with the parent while the parent's mapped key is
// greater. A vertex no longer in the heap is ignored.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(id int) {
	i, ok := h.pos[id]
	if !ok {
		return
	}
	for i > 0 {
		parent := (i - 1) / 2
		if h.key(parent) <= h.key(i) {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

// key resolves slot i's ordering key through the backing map.
func (h *Heap) key(i int) int64 {
	return h.keys.Find(h.ids[i]).Dist
}

// swap exchanges two slots and keeps the position table consistent.
func (h *Heap) swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.pos[h.ids[i]] = i
	h.pos[h.ids[j]] = j
}

// siftDown pushes slot i downward while a child carries a smaller key.
func (h *Heap) siftDown(i int) {
	n := len(h.ids)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.key(l) < h.key(smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.key(r) < h.key(smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
