package vmap_test

import (
	"testing"

	"github.com/velmaran/graphium/vmap"
)

// BenchmarkInsert measures insert-or-replace across repeated table doublings.
func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := vmap.New(vmap.IntKey)
		for k := 0; k < 1024; k++ {
			m.Insert(k, int64(k), vmap.NoPredecessor)
		}
	}
}

// BenchmarkFind measures lookups on a populated map.
func BenchmarkFind(b *testing.B) {
	const n = 4096
	m := vmap.New(vmap.IntKey)
	for k := 0; k < n; k++ {
		m.Insert(k, int64(k), vmap.NoPredecessor)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Find(i % n)
	}
}

// BenchmarkInsertDeleteChurn exercises the grow/shrink schedule around the
// quarter-occupancy threshold.
func BenchmarkInsertDeleteChurn(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := vmap.New(vmap.IntKey)
		for k := 0; k < 256; k++ {
			m.Insert(k, int64(k), vmap.NoPredecessor)
		}
		for k := 0; k < 256; k++ {
			m.Delete(m.Find(k))
		}
	}
}
