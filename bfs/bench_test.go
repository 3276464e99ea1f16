package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hubwalk/bfs"
	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := chain(N)

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0")
	}
}

// BenchmarkBFS_HubWeighted runs BFS from every leaf of the default graph.
func BenchmarkBFS_HubWeighted(b *testing.B) {
	g, err := builder.Build(builder.HubWeightedStrategy, 500, builder.DefaultTiers(), builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	leafLo, leafHi := builder.DefaultTiers().LeafRange(500)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for l := leafLo; l < leafHi; l++ {
			_, _ = bfs.BFS(g, core.NodeID(l))
		}
	}
}
