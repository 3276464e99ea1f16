// Package results models the random-walk query outcomes recorded against
// the initial graph and loads them from JSON.
//
// The loader is tolerant of document shape: a bare array of records, or an
// object carrying the array under "detailed_results", "results" or
// "queries". Node ids may be JSON numbers or strings.
package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// ErrDecode indicates a results document that could not be decoded,
	// either because it is not JSON or because its shape is unrecognised.
	ErrDecode = errors.New("results: malformed results document")

	// ErrShape narrows ErrDecode to valid JSON of an unrecognised shape.
	ErrShape = errors.New("results: unrecognised document shape")
)

// containerKeys are the object keys searched, in order, for the record array.
var containerKeys = []string{"detailed_results", "results", "queries"}

// Record is one query outcome. Read once, never mutated.
type Record struct {
	QueryID    string   `json:"query_id,omitempty"`
	Target     string   `json:"target"`
	Success    bool     `json:"success"`
	Path       []string `json:"path"`
	PathLength int      `json:"path_length"`
}

// Start returns the first vertex of the walk, or "" for an empty path.
func (r Record) Start() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[0]
}

// flexID accepts a JSON string or number.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id %s: want string or number", data)
	}
	if i, err := n.Int64(); err == nil {
		*f = flexID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexID(n.String())
	return nil
}

// wireRecord is the accepted field set, aliases included.
type wireRecord struct {
	QueryID    *flexID  `json:"query_id"`
	ID         *flexID  `json:"id"`
	Target     *flexID  `json:"target"`
	TargetNode *flexID  `json:"target_node"`
	Success    bool     `json:"success"`
	Path       []flexID `json:"path"`
	Visited    []flexID `json:"visited"`
	PathLength *int     `json:"path_length"`
}

func (w wireRecord) record() Record {
	r := Record{Success: w.Success}
	switch {
	case w.QueryID != nil:
		r.QueryID = string(*w.QueryID)
	case w.ID != nil:
		r.QueryID = string(*w.ID)
	}
	switch {
	case w.Target != nil:
		r.Target = string(*w.Target)
	case w.TargetNode != nil:
		r.Target = string(*w.TargetNode)
	}
	path := w.Path
	if path == nil {
		path = w.Visited
	}
	r.Path = make([]string, len(path))
	for i, id := range path {
		r.Path[i] = string(id)
	}
	r.PathLength = len(r.Path)
	if w.PathLength != nil {
		r.PathLength = *w.PathLength
	}
	return r
}

// UnmarshalJSON decodes one record, accepting numeric or string ids and the
// aliases target_node, visited and id.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.record()
	return nil
}

// Parse decodes a results document. Input that is not JSON fails with
// ErrDecode; valid JSON of another shape fails with both ErrDecode and
// ErrShape.
func Parse(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var raw json.RawMessage = data
	if data[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrDecode, ErrShape, err)
		}
		raw = nil
		for _, key := range containerKeys {
			if v, ok := obj[key]; ok {
				raw = v
				break
			}
		}
		if raw == nil {
			return nil, fmt.Errorf("%w: %w: object has none of %v", ErrDecode, ErrShape, containerKeys)
		}
	}

	var recs []Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrDecode, ErrShape, err)
	}
	return recs, nil
}

// Load reads and parses the results file at path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("results: read %s: %w", path, err)
	}
	recs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("results: %s: %w", path, err)
	}
	return recs, nil
}

// Summary aggregates the recorded outcomes.
type Summary struct {
	Queries        int     `json:"queries"`
	Successes      int     `json:"successes"`
	SuccessRate    float64 `json:"success_rate"`
	MeanPathLength float64 `json:"mean_path_length"`
}

// Summarize computes the success rate and the mean path length of the
// successful queries. Zero records give a zero Summary.
func Summarize(recs []Record) Summary {
	s := Summary{Queries: len(recs)}
	total := 0
	for _, r := range recs {
		if r.Success {
			s.Successes++
			total += r.PathLength
		}
	}
	if s.Queries > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Queries)
	}
	if s.Successes > 0 {
		s.MeanPathLength = float64(total) / float64(s.Successes)
	}
	return s
}
