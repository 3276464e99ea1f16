package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/core"
)

// TestBuilderInvariants uses property-based testing to verify that every
// strategy, for any seed and tier split, yields exactly n vertices, the
// fan-out-determined edge count, at most three out-edges per vertex and
// weights in (0, 1].
func TestBuilderInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("structural limits hold for every strategy", prop.ForAll(
		func(seed int64, size, hub, leaf, pick int) bool {
			strategies := builder.Strategies()
			s := strategies[pick%len(strategies)]
			g, err := builder.Build(s, size, builder.Tiers{Hub: hub, Leaf: leaf}, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			wantE := 3*hub + 2*(size-hub-leaf) + leaf
			if s == builder.PathStrategy {
				wantE = 2 * size
			}
			if g.VertexCount() != size || g.EdgeCount() != wantE {
				return false
			}
			if _, d := g.MaxOutDegree(); d > 3 {
				return false
			}
			for _, e := range g.Edges() {
				if e.Weight <= 0 || e.Weight > 1 {
					return false
				}
				if _, ok := core.ParseNodeID(e.To); !ok {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(100, 400),
		gen.IntRange(3, 30),
		gen.IntRange(1, 30),
		gen.IntRange(0, 5),
	))

	properties.Property("DecayWeight is strictly decreasing", prop.ForAll(
		func(x int) bool {
			return builder.DecayWeight(x) > builder.DecayWeight(x+1)
		},
		gen.IntRange(0, 2000),
	))

	properties.Property("ParseStrategy inverts String", prop.ForAll(
		func(pick int) bool {
			strategies := builder.Strategies()
			s := strategies[pick%len(strategies)]
			got, err := builder.ParseStrategy(s.String())
			return err == nil && got == s
		},
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
