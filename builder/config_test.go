// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) and the sampling helpers.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderConfigDefaults verifies the documented defaults.
func TestBuilderConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DecayWeight(3), cfg.weightFn(3))
	assert.Equal(t, DefaultTierOdds(), cfg.odds)
	assert.True(t, cfg.hubSelfLoops)
	assert.False(t, cfg.closedChain)
}

// TestOptionsOverride verifies that later options win.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithSymbNumb("n"),
		WithDefaultIDs(),
		WithDecayScale(5),
		WithTierOdds(1, 2, 3),
		WithHubSelfLoops(false),
		WithClosedChain(),
	)
	assert.Equal(t, "3", cfg.idFn(3))
	assert.InDelta(t, 0.2, cfg.weightFn(0), 1e-12)
	assert.Equal(t, TierOdds{Hub: 1, Mid: 2, Leaf: 3}, cfg.odds)
	assert.False(t, cfg.hubSelfLoops)
	assert.True(t, cfg.closedChain)

	cfg = newBuilderConfig(WithTargetWeight(ConstantWeightFn(2)))
	assert.Equal(t, 2.0, cfg.weightFn(100))
}

// TestRNGOptions verifies seeding reproducibility and explicit RNG injection.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithTargetWeight(nil) })
	assert.Panics(t, func() { WithDecayScale(0) })
	assert.Panics(t, func() { WithTierOdds(-1, 1, 1) })
	assert.Panics(t, func() { WithTierOdds(0, 0, 0) })
	assert.Panics(t, func() { ConstantWeightFn(0) })
	assert.Panics(t, func() { SymbolNumberIDFn("v")(-1) })
}

// TestTiersRanges checks the class boundaries of the default partition.
func TestTiersRanges(t *testing.T) {
	t.Parallel()

	tr := DefaultTiers()
	lo, hi := tr.HubRange()
	assert.Equal(t, [2]int{0, 50}, [2]int{lo, hi})
	lo, hi = tr.MidRange(500)
	assert.Equal(t, [2]int{50, 450}, [2]int{lo, hi})
	lo, hi = tr.LeafRange(500)
	assert.Equal(t, [2]int{450, 500}, [2]int{lo, hi})
	assert.Equal(t, 400, tr.Mid(500))

	assert.Equal(t, 3, tr.Class(500, 0))
	assert.Equal(t, 3, tr.Class(500, 49))
	assert.Equal(t, 2, tr.Class(500, 50))
	assert.Equal(t, 2, tr.Class(500, 449))
	assert.Equal(t, 1, tr.Class(500, 450))
	assert.Equal(t, 1, tr.Class(500, 499))
	assert.Equal(t, 0, tr.Class(500, 500))
	assert.Equal(t, 0, tr.Class(500, -1))
}

// TestSampleDistinct checks range and distinctness over many draws.
func TestSampleDistinct(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 1000; iter++ {
		got := sampleDistinct(rng, 10, 15, 5)
		require.Len(t, got, 5)
		seen := map[int]bool{}
		for _, v := range got {
			require.GreaterOrEqual(t, v, 10)
			require.Less(t, v, 15)
			require.False(t, seen[v], "duplicate %d in %v", v, got)
			seen[v] = true
		}
	}
}

// TestSampleDistinctExcluding never returns the skipped value.
func TestSampleDistinctExcluding(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4))
	for iter := 0; iter < 1000; iter++ {
		skip := iter % 3
		got := sampleDistinctExcluding(rng, 0, 3, skip, 2)
		require.Len(t, got, 2)
		assert.NotContains(t, got, skip)
		assert.NotEqual(t, got[0], got[1])
	}
}

// TestTierSamplerProportions checks the 3:1:1 odds against class sizes.
// With 50 hubs, 400 mids and 50 leaves the class masses are 150:400:50.
func TestTierSamplerProportions(t *testing.T) {
	t.Parallel()

	const draws = 60000
	s := newTierSampler(500, DefaultTiers(), DefaultTierOdds())
	rng := rand.New(rand.NewSource(5))
	counts := [4]int{}
	for i := 0; i < draws; i++ {
		counts[DefaultTiers().Class(500, s.draw(rng))]++
	}

	assert.InDelta(t, 150.0/600, float64(counts[3])/draws, 0.01)
	assert.InDelta(t, 400.0/600, float64(counts[2])/draws, 0.01)
	assert.InDelta(t, 50.0/600, float64(counts[1])/draws, 0.01)
	assert.Zero(t, counts[0])

	for i := 0; i < 1000; i++ {
		a, b := s.drawPair(rng)
		require.NotEqual(t, a, b)
	}
}

// TestValidateOddsSupport rejects odds that leave a single drawable vertex.
func TestValidateOddsSupport(t *testing.T) {
	t.Parallel()

	tr := Tiers{Hub: 2, Leaf: 1}
	assert.ErrorIs(t, validateOddsSupport("X", 4, tr, TierOdds{Leaf: 1}), ErrTierSizes)
	assert.NoError(t, validateOddsSupport("X", 4, tr, TierOdds{Hub: 1}))
}
