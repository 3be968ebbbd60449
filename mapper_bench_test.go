package entitymap

import (
	"fmt"
	"testing"
)

// Map Lookup Benchmarks
func BenchmarkMapGet(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			m := NewEntityMap()
			keys := make([]Entity, size)
			for i := range keys {
				keys[i] = Entity{ID: uint32(i), Version: 1}
				m.Insert(keys[i], Entity{ID: uint32(i), Version: 2})
			}
			i := 0
			for b.Loop() {
				_, _ = m.Get(keys[i%size])
				i++
			}
			b.ReportAllocs()
		})
	}
}

// Placeholder Allocation Benchmarks
func BenchmarkGetOrAlloc(b *testing.B) {
	sizes := []int{1000, 10000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				w := NewWorld(size)
				m := NewEntityMap()
				b.StartTimer()
				WithMapper(m, w, func(_ *World, mp *Mapper) error {
					for i := range size {
						mp.GetOrAlloc(Entity{ID: uint32(i), Version: 1})
					}
					return nil
				})
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkGetOrAllocHit(b *testing.B) {
	size := 10000
	w := NewWorld(size)
	m := NewEntityMap()
	keys := make([]Entity, size)
	for i := range keys {
		keys[i] = Entity{ID: uint32(i), Version: 1}
		m.Insert(keys[i], Entity{ID: uint32(i), Version: 2})
	}
	b.Run("10K", func(b *testing.B) {
		WithMapper(m, w, func(_ *World, mp *Mapper) error {
			i := 0
			for b.Loop() {
				mp.GetOrAlloc(keys[i%size])
				i++
			}
			return nil
		})
		b.ReportAllocs()
	})
}

// Session Benchmarks
func BenchmarkWithMapperEmpty(b *testing.B) {
	w := NewWorld(1)
	m := NewEntityMap()
	for b.Loop() {
		WithMapper(m, w, func(_ *World, _ *Mapper) error {
			return nil
		})
	}
	b.ReportAllocs()
}
