// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3, Path: n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i—(i+1); Cycle closes with (n-1)—0.
//
// Complexity: O(n) time, O(n) extra space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		return ring(g, methodCycle, indexIDs(cfg.idFn, n), true)
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		return ring(g, methodPath, indexIDs(cfg.idFn, n), false)
	}
}

// ring adds ids and links consecutive ones, closing the loop when closed.
func ring(g *core.Graph, method string, ids []string, closed bool) error {
	if err := addVertices(g, method, ids); err != nil {
		return err
	}
	for i := 0; i+1 < len(ids); i++ {
		if err := addEdge(g, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(g, method, ids[len(ids)-1], ids[0])
	}
	return nil
}
