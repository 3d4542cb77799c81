// Package vmap: entry/record declarations, sentinels, and the key
// canonicalization contract with its stock converters.
package vmap

import (
	"math"
	"strconv"
)

// Infinity is the "unset / unreachable" distance sentinel. Shortest-path
// algorithms initialize every non-source entry to it and relaxation guards
// against propagating it.
const Infinity int64 = math.MaxInt64

// NoPredecessor marks an entry with no predecessor link: the root of a
// traversal tree or an untouched vertex.
const NoPredecessor = -1

// minBuckets is the bucket-array floor; shrinking never goes below it,
// which keeps a churny small map from resizing on every operation.
const minBuckets = 8

// KeyFunc converts a raw key into its canonical hashable form. It is the
// collaborator contract that makes the map generic: the graph engine only
// ever supplies vertex ids through IntKey, but any key type with a stable
// string form works.
type KeyFunc[K any] func(K) string

// IntKey canonicalizes int keys.
func IntKey(k int) string { return strconv.Itoa(k) }

// Int64Key canonicalizes int64 keys.
func Int64Key(k int64) string { return strconv.FormatInt(k, 10) }

// Float64Key canonicalizes float64 keys via the shortest round-trip form.
func Float64Key(k float64) string { return strconv.FormatFloat(k, 'g', -1, 64) }

// StringKey canonicalizes string keys (identity).
func StringKey(k string) string { return k }

// Entry is one key→record pair: the traversal/shortest-path metadata for a
// single vertex. Dist holds a distance or discovery order (Infinity when
// unset); Pred holds the predecessor vertex id (NoPredecessor for roots).
//
// prev/next are the intra-bucket chain links that make Delete O(1); they
// belong to the owning Map and survive resizes untouched.
type Entry[K any] struct {
	// Key is the raw key as supplied by the caller.
	Key K

	// Dist is the distance-or-order field. Sentinel: Infinity.
	Dist int64

	// Pred is the predecessor vertex id. Sentinel: NoPredecessor.
	Pred int

	canon      string // canonical form, computed once at insert
	prev, next *Entry[K]
}
