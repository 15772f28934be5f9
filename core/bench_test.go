// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/tessera/core"
)

// BenchmarkAddEdge measures insertion of a path graph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i, i+1)
	}
}

// BenchmarkNeighborIDs measures sorted neighbor queries on a 12×12 grid of
// tiles, the common puzzle size.
func BenchmarkNeighborIDs(b *testing.B) {
	const side = 12
	g := core.NewGraph(core.WithCapacity(side * side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			id := y*side + x
			if x+1 < side {
				_ = g.AddEdge(id, id+1)
			}
			if y+1 < side {
				_ = g.AddEdge(id, id+side)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs(i % (side * side))
	}
}
