package results_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubwalk/results"
)

func TestParse_Shapes(t *testing.T) {
	want := []results.Record{
		{Target: "7", Success: true, Path: []string{"3", "5", "7"}, PathLength: 3},
		{Target: "9", Success: false, Path: []string{}, PathLength: 0},
	}

	docs := map[string]string{
		"array":            `[{"target":7,"success":true,"path":[3,5,7]},{"target":"9","success":false,"path":[]}]`,
		"detailed_results": `{"success_rate":0.5,"detailed_results":[{"target":"7","success":true,"path":["3","5","7"]},{"target":9,"success":false}]}`,
		"results":          `{"results":[{"target_node":7,"success":true,"visited":[3,5,7]},{"target":9}]}`,
		"queries":          `{"queries":[{"target":7,"success":true,"path":[3,"5",7]},{"target":9,"success":false,"path":[]}]}`,
	}
	for name, doc := range docs {
		got, err := results.Parse([]byte(doc))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParse_Fields(t *testing.T) {
	got, err := results.Parse([]byte(`[{"query_id":12,"target":4,"success":true,"path":[1,4],"path_length":9}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "12", got[0].QueryID)
	assert.Equal(t, 9, got[0].PathLength)
	assert.Equal(t, "1", got[0].Start())
	assert.Equal(t, "", results.Record{}.Start())
}

func TestParse_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":       ``,
		"scalar":      `42`,
		"no-key":      `{"summary":{}}`,
		"bad-records": `{"results":{"a":1}}`,
		"bad-id":      `[{"target":true}]`,
	} {
		_, err := results.Parse([]byte(doc))
		assert.ErrorIs(t, err, results.ErrDecode, name)
	}
}

func TestParse_ShapeVersusSyntax(t *testing.T) {
	for name, doc := range map[string]string{
		"no-key":       `{"summary":{"success_rate":0.4},"by_query":{"q1":{}}}`,
		"keyed-map":    `{"results":{"q1":{"target":1}}}`,
		"string-bool":  `[{"target":1,"success":"yes","path":[0,1]}]`,
		"scalar":       `42`,
		"bare-strings": `["a","b"]`,
	} {
		_, err := results.Parse([]byte(doc))
		assert.ErrorIs(t, err, results.ErrDecode, name)
		assert.ErrorIs(t, err, results.ErrShape, name)
	}

	for name, doc := range map[string]string{
		"empty":     ``,
		"truncated": `{"detailed_results":[`,
		"garbage":   `not json`,
	} {
		_, err := results.Parse([]byte(doc))
		assert.ErrorIs(t, err, results.ErrDecode, name)
		assert.NotErrorIs(t, err, results.ErrShape, name)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"target":1,"success":true,"path":[0,1]}]`), 0o644))

	recs, err := results.Load(path)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = results.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, results.Summary{}, results.Summarize(nil))

	s := results.Summarize([]results.Record{
		{Success: true, PathLength: 4},
		{Success: true, PathLength: 2},
		{Success: false, PathLength: 100},
		{Success: false},
	})
	assert.Equal(t, 4, s.Queries)
	assert.Equal(t, 2, s.Successes)
	assert.InDelta(t, 0.5, s.SuccessRate, 1e-12)
	assert.InDelta(t, 3.0, s.MeanPathLength, 1e-12)
}
