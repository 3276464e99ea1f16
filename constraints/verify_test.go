package constraints_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubwalk/builder"
	"github.com/katalvlaran/hubwalk/constraints"
	"github.com/katalvlaran/hubwalk/core"
)

// lineGraph returns n vertices where i → i+1 with weight 1.
func lineGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(core.NodeID(i)))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1))
	}
	return g
}

// captureLogger returns a JSON logger and the buffer it writes to.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// warnings decodes the warning lines written to buf.
func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["level"] == "WARN" {
			out = append(out, rec)
		}
	}
	return out
}

func TestVerify_Valid(t *testing.T) {
	g := lineGraph(t, 10)
	r := constraints.Verify(g, constraints.Limits{NodeCount: 10, MaxEdgesPerNode: 1, MaxTotalEdges: 9})

	assert.True(t, r.OK())
	assert.Empty(t, r.Categories())
	assert.Equal(t, 10, r.Nodes)
	assert.Equal(t, 9, r.Edges)
	assert.Equal(t, 1, r.MaxOutDegree)
}

func TestVerify_NodeEdgesOverflow(t *testing.T) {
	g := lineGraph(t, 10)
	for _, v := range []string{"2", "3", "4", "5"} {
		require.NoError(t, g.AddEdge("7", v, 1))
	}
	logger, buf := captureLogger()

	ok := constraints.Check(logger, g, constraints.Limits{NodeCount: 10, MaxEdgesPerNode: 3, MaxTotalEdges: 100})
	require.False(t, ok)

	ws := warnings(t, buf)
	require.Len(t, ws, 1)
	assert.Equal(t, "node_edges", ws[0]["category"])
	assert.Equal(t, []any{"7"}, ws[0]["nodes"])
	assert.Contains(t, ws[0]["detail"], "node 7 has 5 edges")
}

// One edge over the cap is a violation; sitting at the cap is not.
func TestVerify_OneOverEdgeCap(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	for _, v := range []string{"1", "2", "3", "4"} {
		require.NoError(t, g.AddEdge("0", v, 1))
	}
	for _, v := range []string{"2", "3", "4"} {
		require.NoError(t, g.AddEdge("1", v, 1))
	}
	limits := constraints.Limits{NodeCount: 5, MaxEdgesPerNode: 3, MaxTotalEdges: 100}

	r := constraints.Verify(g, limits)
	require.Equal(t, []constraints.Category{constraints.NodeEdges}, r.Categories())
	vs := r.ByCategory(constraints.NodeEdges)
	require.Len(t, vs, 1)
	assert.Equal(t, "0", vs[0].Node)
	assert.Equal(t, 4.0, vs[0].Got)
	assert.Equal(t, 3.0, vs[0].Limit)
	assert.Equal(t, 4, r.MaxOutDegree)

	logger, buf := captureLogger()
	require.False(t, constraints.Check(logger, g, limits))
	ws := warnings(t, buf)
	require.Len(t, ws, 1)
	assert.Equal(t, "node_edges", ws[0]["category"])
	assert.Equal(t, []any{"0"}, ws[0]["nodes"])
	assert.Contains(t, ws[0]["detail"], "node 0 has 4 edges, exceeding limit of 3")
}

func TestVerify_AllCategories(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("0", "1", 0))
	require.NoError(t, g.AddEdge("0", "2", 10.5))
	require.NoError(t, g.AddEdge("0", "x", -1))
	require.NoError(t, g.AddEdge("1", "1", 10))
	require.NoError(t, g.AddEdge("2", "0", math.Inf(1)))

	r := constraints.Verify(g, constraints.Limits{NodeCount: 5, MaxEdgesPerNode: 2, MaxTotalEdges: 4})
	require.False(t, r.OK())
	assert.Equal(t, []constraints.Category{
		constraints.TotalEdges,
		constraints.NodeEdges,
		constraints.NodeSet,
		constraints.WeightRange,
	}, r.Categories())

	assert.Equal(t, []string{"3", "4"}, r.Missing)
	assert.Equal(t, []string{"x"}, r.Unexpected)
	assert.Len(t, r.ByCategory(constraints.WeightRange), 4)
	assert.Len(t, r.ByCategory(constraints.NodeEdges), 1)

	logger, buf := captureLogger()
	constraints.Log(logger, r)
	assert.Len(t, warnings(t, buf), 4)
}

func TestVerify_NodeSetIDs(t *testing.T) {
	g := lineGraph(t, 3)
	require.NoError(t, g.AddVertex("03"))

	r := constraints.Verify(g, constraints.Limits{NodeCount: 4, MaxEdgesPerNode: 3, MaxTotalEdges: 10})
	assert.Equal(t, []constraints.Category{constraints.NodeSet}, r.Categories())
	assert.Equal(t, []string{"3"}, r.Missing)
	assert.Equal(t, []string{"03"}, r.Unexpected)
}

func TestVerify_DoesNotMutate(t *testing.T) {
	g := lineGraph(t, 5)
	require.NoError(t, g.AddEdge("4", "0", 20))
	before := g.Edges()

	_ = constraints.Verify(g, constraints.Limits{NodeCount: 3, MaxEdgesPerNode: 0, MaxTotalEdges: 1})
	assert.Equal(t, before, g.Edges())
}

// TestVerify_HubWeighted200 checks the 200-vertex scenario: classes
// [0,50), [50,150), [150,200) and a valid graph under limits (3, 400).
func TestVerify_HubWeighted200(t *testing.T) {
	tiers := builder.DefaultTiers()
	hubLo, hubHi := tiers.HubRange()
	midLo, midHi := tiers.MidRange(200)
	leafLo, leafHi := tiers.LeafRange(200)
	assert.Equal(t, []int{0, 50, 50, 150, 150, 200}, []int{hubLo, hubHi, midLo, midHi, leafLo, leafHi})

	g, err := builder.Build(builder.HubWeightedStrategy, 200, tiers, builder.WithSeed(2024))
	require.NoError(t, err)
	logger, buf := captureLogger()
	assert.True(t, constraints.Check(logger, g, constraints.Limits{NodeCount: 200, MaxEdgesPerNode: 3, MaxTotalEdges: 400}))
	assert.Empty(t, warnings(t, buf))
}

// TestVerify_DefaultStrategies checks every strategy against the default
// limits of the evaluation harness.
func TestVerify_DefaultStrategies(t *testing.T) {
	for _, s := range builder.Strategies() {
		g, err := builder.Build(s, constraints.DefaultNodeCount, s.DefaultTiers(), builder.WithSeed(1))
		require.NoError(t, err, s.String())
		r := constraints.Verify(g, constraints.DefaultLimits())
		assert.True(t, r.OK(), "%s: %v", s, r.Violations)
	}
}

func TestLimitsValidate(t *testing.T) {
	require.NoError(t, constraints.DefaultLimits().Validate())

	err := constraints.Limits{NodeCount: 500, MaxEdgesPerNode: 0, MaxTotalEdges: 1000}.Validate()
	require.ErrorIs(t, err, constraints.ErrInvalidLimits)
	assert.Contains(t, err.Error(), "MaxEdgesPerNode")
}

func TestCategoryText(t *testing.T) {
	raw, err := json.Marshal(constraints.Violation{Category: constraints.WeightRange})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"weight_range"`)
	assert.Equal(t, "unknown", constraints.Category(9).String())
}
