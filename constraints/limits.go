package constraints

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Defaults of the evaluation harness.
const (
	DefaultNodeCount       = 500
	DefaultMaxEdgesPerNode = 3
	DefaultMaxTotalEdges   = 1000
)

// Limits are the structural bounds a submitted graph must respect.
type Limits struct {
	NodeCount       int `json:"node_count" yaml:"node_count" validate:"min=1"`
	MaxEdgesPerNode int `json:"max_edges_per_node" yaml:"max_edges_per_node" validate:"min=1"`
	MaxTotalEdges   int `json:"max_total_edges" yaml:"max_total_edges" validate:"min=1"`
}

// DefaultLimits returns 500 nodes, 3 edges per node and 1000 edges in total.
func DefaultLimits() Limits {
	return Limits{
		NodeCount:       DefaultNodeCount,
		MaxEdgesPerNode: DefaultMaxEdgesPerNode,
		MaxTotalEdges:   DefaultMaxTotalEdges,
	}
}

// Validate checks that every bound is positive.
func (l Limits) Validate() error {
	if err := validate.Struct(l); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidLimits, err)
	}

	// Report the first failing field
	e := validationErrs[0]
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%w: %s must be at least %s, got %v", ErrInvalidLimits, e.Field(), e.Param(), e.Value())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidLimits, e.Field(), e.Tag())
	}
}
