package constraints

import (
	"errors"
	"time"
)

// ErrInvalidLimits indicates a Limits value rejected by Limits.Validate.
var ErrInvalidLimits = errors.New("constraints: invalid limits")

// Weight bounds: every edge weight w must satisfy MinWeight < w ≤ MaxWeight.
const (
	MinWeight = 0.0
	MaxWeight = 10.0
)

// Category identifies one of the four structural checks.
type Category int

const (
	// TotalEdges: sum of out-degrees exceeds MaxTotalEdges.
	TotalEdges Category = iota
	// NodeEdges: a vertex has more than MaxEdgesPerNode out-edges.
	NodeEdges
	// NodeSet: vertex ids differ from "0".."NodeCount-1".
	NodeSet
	// WeightRange: an edge weight lies outside (0, 10].
	WeightRange
)

func (c Category) String() string {
	switch c {
	case TotalEdges:
		return "total_edges"
	case NodeEdges:
		return "node_edges"
	case NodeSet:
		return "node_set"
	case WeightRange:
		return "weight_range"
	default:
		return "unknown"
	}
}

// MarshalText renders the category name in JSON and YAML reports.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Violation represents one failed check. Node and Target are set only for
// per-vertex and per-edge findings.
type Violation struct {
	Category Category `json:"category"`
	Node     string   `json:"node,omitempty"`
	Target   string   `json:"target,omitempty"`
	Got      float64  `json:"got"`
	Limit    float64  `json:"limit"`
	Message  string   `json:"message"`
}

// Report contains the results of verifying a graph against Limits.
type Report struct {
	Limits       Limits      `json:"limits"`
	Nodes        int         `json:"nodes"`
	Edges        int         `json:"edges"`
	MaxOutDegree int         `json:"max_out_degree"`
	Missing      []string    `json:"missing,omitempty"`
	Unexpected   []string    `json:"unexpected,omitempty"`
	Violations   []Violation `json:"violations"`
	CheckedAt    time.Time   `json:"checked_at"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Violations) == 0
}

// Categories returns the failing categories in check order, without
// duplicates.
func (r Report) Categories() []Category {
	var seen [WeightRange + 1]bool
	for _, v := range r.Violations {
		seen[v.Category] = true
	}
	out := make([]Category, 0, len(seen))
	for c, failed := range seen {
		if failed {
			out = append(out, Category(c))
		}
	}
	return out
}

// ByCategory returns violations filtered by category.
func (r Report) ByCategory(c Category) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range r.Violations {
		if v.Category == c {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
