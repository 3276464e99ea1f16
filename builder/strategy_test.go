package builder_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubwalk/builder"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	cases := map[string]builder.Strategy{
		"hub-weighted":          builder.HubWeightedStrategy,
		"HUB_WEIGHTED":          builder.HubWeightedStrategy,
		" hub-uniform ":         builder.HubUniformStrategy,
		"hub-cycle":             builder.HubCycleStrategy,
		"hub_weighted_cycle":    builder.HubWeightedCycleStrategy,
		"hub-weighted-visitall": builder.HubWeightedVisitAllStrategy,
		"path":                  builder.PathStrategy,
	}
	for in, want := range cases {
		got, err := builder.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := builder.ParseStrategy("star")
	assert.ErrorIs(t, err, builder.ErrUnknownStrategy)
}

func TestStrategyText(t *testing.T) {
	t.Parallel()

	type doc struct {
		Strategy builder.Strategy `json:"strategy"`
	}
	raw, err := json.Marshal(doc{Strategy: builder.HubCycleStrategy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"strategy":"hub-cycle"}`, string(raw))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"strategy":"path"}`), &d))
	assert.Equal(t, builder.PathStrategy, d.Strategy)

	assert.Error(t, json.Unmarshal([]byte(`{"strategy":"bogus"}`), &d))
	_, err = builder.Strategy(42).MarshalText()
	assert.ErrorIs(t, err, builder.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(42)", builder.Strategy(42).String())
}

func TestStrategyDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.HubWeightedStrategy, builder.DefaultStrategy)
	assert.Len(t, builder.Strategies(), 6)
	assert.Equal(t, builder.VisitAllTiers(), builder.HubWeightedVisitAllStrategy.DefaultTiers())
	assert.Equal(t, builder.DefaultTiers(), builder.HubCycleStrategy.DefaultTiers())
	assert.False(t, builder.PathStrategy.Tiered())
	assert.True(t, builder.HubUniformStrategy.Tiered())
}
