// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_star.go — Star(n) and Wheel(n) constructors, both built around the
// fixed hub vertex CenterVertexID.
//
// Contract:
//   • Star:  n ≥ 2; hub plus n-1 leaves idFn(0..n-2).
//   • Wheel: n ≥ 4; W_n = C_{n-1} + hub, ring IDs idFn(0..n-2).
//   • Hub is added first, then leaves/ring, then spokes in ring order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// CenterVertexID is the fixed ID of the hub in Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		leaves := indexIDs(cfg.idFn, n-1)
		if err := addVertices(g, methodStar, append([]string{CenterVertexID}, leaves...)); err != nil {
			return err
		}
		return spokes(g, methodStar, leaves)
	}
}

// Wheel returns a Constructor for the wheel W_n (n vertices in total).
// Wheels with an odd ring need four colors; W_6 has a degree-5 hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		rim := indexIDs(cfg.idFn, n-1)
		if err := ring(g, methodWheel, rim, true); err != nil {
			return err
		}
		return spokes(g, methodWheel, rim)
	}
}

func spokes(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := addEdge(g, method, CenterVertexID, id); err != nil {
			return err
		}
	}
	return nil
}
