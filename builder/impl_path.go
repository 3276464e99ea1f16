// SPDX-License-Identifier: MIT
// Package: hubwalk/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Vertex 0 fans out to 1, 2 and 3 with weight 1.
//   - Inner vertex i (0<i<n-1) points to i-1 and i+1 with weight 0.5 each.
//   - Vertex n-1 points back to n-2 with weight 1.
//   - No randomness; cfg.rng is ignored.
//
// Complexity:
//   - Time: O(n) vertices + O(2n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hubwalk/core"
)

// pathFanOut are the targets of vertex 0.
var pathFanOut = [...]int{1, 2, 3}

// Path returns a Constructor that builds the bidirectional path with a
// three-way fan-out at its head.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}

		var err error
		for _, v := range pathFanOut {
			if err = addEdge(g, cfg, methodPath, 0, v, UnitWeight); err != nil {
				return err
			}
		}
		for i := 1; i < n-1; i++ {
			if err = addEdge(g, cfg, methodPath, i, i-1, pathSplitWeight); err != nil {
				return err
			}
			if err = addEdge(g, cfg, methodPath, i, i+1, pathSplitWeight); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodPath, n-1, n-2, UnitWeight)
	}
}

// addVertices inserts idFn(0..n-1) in ascending order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge adds idFn(u)→idFn(v) with weight w.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int, w float64) error {
	uID, vID := cfg.idFn(u), cfg.idFn(v)
	if err := g.AddEdge(uID, vID, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, uID, vID, w, err)
	}

	return nil
}
