package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// BenchmarkDijkstra_Grid measures a full solve on a 100×100 bidirectional grid.
func BenchmarkDijkstra_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(1, 100), builder.WithBidirectional()},
		builder.Grid(100, 100),
	)
	if err != nil {
		b.Fatal(err)
	}
	snap := g.Snapshot()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Solve(snap, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_RandomSparse measures a solve on a 2000-vertex random digraph,
// including the snapshot taken by Dijkstra.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightRange(1, 50)},
		builder.RandomSparse(2000, 0.003),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
