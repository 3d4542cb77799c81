// Package vmap: the chained hash map implementation. Insert-or-replace,
// find, O(1) delete-by-record, and the table-doubling resize policy.
package vmap

// Map is a chained, auto-resizing key→Entry index. Create one with New;
// the zero value is not usable.
type Map[K any] struct {
	keyOf   KeyFunc[K]
	buckets []*Entry[K]
	count   int
}

// New creates an empty Map using keyOf as the canonicalization function.
// Complexity: O(1).
func New[K any](keyOf KeyFunc[K]) *Map[K] {
	return &Map[K]{
		keyOf:   keyOf,
		buckets: make([]*Entry[K], minBuckets),
	}
}

// djb2 string hash (Dan Bernstein).
func djb2(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}

	return h
}

func (m *Map[K]) slot(canon string) int {
	return int(djb2(canon) % uint64(len(m.buckets)))
}

// Insert stores a fresh entry for key with the given distance and
// predecessor. If the key is already present the old entry is unlinked,
// the new one takes its place in the chain, and the old entry is returned;
// otherwise the entry is pushed at the bucket head and nil is returned.
// Doubles the bucket array when the load factor reaches 1.
// Complexity: amortized O(1).
func (m *Map[K]) Insert(key K, dist int64, pred int) *Entry[K] {
	e := &Entry[K]{Key: key, Dist: dist, Pred: pred, canon: m.keyOf(key)}
	i := m.slot(e.canon)

	// Replace in place on a canonical-key match, preserving chain position.
	for old := m.buckets[i]; old != nil; old = old.next {
		if old.canon != e.canon {
			continue
		}
		e.prev, e.next = old.prev, old.next
		if old.prev != nil {
			old.prev.next = e
		} else {
			m.buckets[i] = e
		}
		if old.next != nil {
			old.next.prev = e
		}
		old.prev, old.next = nil, nil

		return old
	}

	// No duplicate: push at the head of the chain.
	e.next = m.buckets[i]
	if e.next != nil {
		e.next.prev = e
	}
	m.buckets[i] = e
	m.count++

	if m.count == len(m.buckets) {
		m.resize(len(m.buckets) * 2)
	}

	return nil
}

// Find returns the entry stored under key, or nil if absent.
// Complexity: amortized O(1).
func (m *Map[K]) Find(key K) *Entry[K] {
	canon := m.keyOf(key)
	for e := m.buckets[m.slot(canon)]; e != nil; e = e.next {
		if e.canon == canon {
			return e
		}
	}

	return nil
}

// Delete unlinks e from its bucket chain in O(1). Like the chain links
// themselves, this trusts the caller: e must currently be in this map.
// Halves the bucket array when occupancy falls to a quarter (floor 8).
func (m *Map[K]) Delete(e *Entry[K]) {
	if e.prev == nil {
		// Head of its chain; the bucket index is recomputed from the key.
		m.buckets[m.slot(e.canon)] = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.prev, e.next = nil, nil
	m.count--

	if len(m.buckets) > minBuckets && m.count <= len(m.buckets)/4 {
		m.resize(len(m.buckets) / 2)
	}
}

// resize relinks every existing entry into a bucket array of size n.
// Entries are moved, never copied, so live *Entry pointers stay valid.
func (m *Map[K]) resize(n int) {
	old := m.buckets
	m.buckets = make([]*Entry[K], n)
	for _, e := range old {
		for e != nil {
			next := e.next
			i := m.slot(e.canon)
			e.prev = nil
			e.next = m.buckets[i]
			if e.next != nil {
				e.next.prev = e
			}
			m.buckets[i] = e
			e = next
		}
	}
}

// Len returns the number of stored entries. O(1).
func (m *Map[K]) Len() int { return m.count }

// IsEmpty reports whether the map holds no entries. It is the sentinel
// check for Bellman-Ford's negative-cycle result.
func (m *Map[K]) IsEmpty() bool { return m.count == 0 }

// Clear discards every entry and resets the bucket array to the floor
// capacity. Used by Bellman-Ford to void a result poisoned by a negative
// cycle.
func (m *Map[K]) Clear() {
	m.buckets = make([]*Entry[K], minBuckets)
	m.count = 0
}

// Each calls fn for every entry. Iteration order is unspecified; fn must
// not insert or delete.
func (m *Map[K]) Each(fn func(*Entry[K])) {
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			fn(e)
		}
	}
}
