// Package vmap implements the auxiliary key→record index that every
// algorithm package uses to attach discovery order, distances, and
// predecessors to vertices without mutating the graph itself.
//
// The map is a chained hash table over a canonical string form of the key,
// produced by a pluggable KeyFunc, so the same record shape serves integer
// vertex ids, float keys, or plain strings. Buckets hold doubly-linked
// entry chains, so Delete unlinks a record in O(1) without re-probing.
//
// Capacity follows table doubling: the bucket array doubles when the load
// factor reaches 1 and halves when it falls to a quarter, never below a
// floor of 8 buckets. Resizing relinks the existing Entry structs into the
// new bucket array; record identity is preserved, which lets callers hold
// on to *Entry pointers across arbitrary map growth.
//
// A Map instance is built fresh for one algorithm invocation and either
// discarded or handed back to the caller as that algorithm's result; it is
// never shared between runs or goroutines.
//
// Complexity: Insert, Find amortized O(1); Delete O(1); resize O(n),
// amortized away by the doubling schedule.
package vmap
