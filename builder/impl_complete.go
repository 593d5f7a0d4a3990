// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_complete.go — Complete(n) constructor.
//
// K_n is planar only for n ≤ 4. K_5 and K_6 are still five-colorable but
// have no embedding; K_n for n ≥ 7 has minimum degree 6 and makes the
// colorer report a non-planar input. Keep this constructor for those cases.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits pairs (i,j), i<j, in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg.idFn, n)
		if err := addVertices(g, methodComplete, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
