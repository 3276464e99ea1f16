// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// strategy.go — the closed set of topology strategies selectable by
// configuration.

package builder

import (
	"fmt"
	"strings"
)

// Strategy names one topology builder.
type Strategy int

const (
	// HubWeightedStrategy is the default strategy.
	HubWeightedStrategy Strategy = iota
	HubUniformStrategy
	HubCycleStrategy
	HubWeightedCycleStrategy
	HubWeightedVisitAllStrategy
	PathStrategy
)

// DefaultStrategy is the strategy used when none is configured.
const DefaultStrategy = HubWeightedStrategy

var strategyNames = map[Strategy]string{
	HubWeightedStrategy:         "hub-weighted",
	HubUniformStrategy:          "hub-uniform",
	HubCycleStrategy:            "hub-cycle",
	HubWeightedCycleStrategy:    "hub-weighted-cycle",
	HubWeightedVisitAllStrategy: "hub-weighted-visitall",
	PathStrategy:                "path",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		HubWeightedStrategy,
		HubUniformStrategy,
		HubCycleStrategy,
		HubWeightedCycleStrategy,
		HubWeightedVisitAllStrategy,
		PathStrategy,
	}
}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy resolves a configuration name (case-insensitive, '_' and '-'
// are interchangeable).
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, s := range Strategies() {
		if strategyNames[s] == norm {
			return s, nil
		}
	}

	return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(s), ErrUnknownStrategy)
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// Tiered reports whether the strategy uses the hub/mid/leaf partition.
func (s Strategy) Tiered() bool {
	return s != PathStrategy
}

// DefaultTiers returns the partition the strategy was designed around.
func (s Strategy) DefaultTiers() Tiers {
	if s == HubWeightedVisitAllStrategy {
		return VisitAllTiers()
	}

	return DefaultTiers()
}

// Constructor returns the strategy bound to n vertices and tiers t.
// Path ignores t.
func (s Strategy) Constructor(n int, t Tiers) (Constructor, error) {
	switch s {
	case HubWeightedStrategy:
		return HubWeighted(n, t), nil
	case HubUniformStrategy:
		return HubUniform(n, t), nil
	case HubCycleStrategy:
		return HubCycle(n, t), nil
	case HubWeightedCycleStrategy:
		return HubWeightedCycle(n, t), nil
	case HubWeightedVisitAllStrategy:
		return HubWeightedVisitAll(n, t), nil
	case PathStrategy:
		return Path(n), nil
	}

	return nil, fmt.Errorf("Constructor(%d): %w", int(s), ErrUnknownStrategy)
}
