// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_platonic.go — PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrOptionViolation.
//   • Adds shell vertices via cfg.idFn (0..n-1), then shell edges in the
//     order listed in variants_platonic.go.
//   • withCenter adds CenterVertexID and spokes to every shell vertex. No
//     solid is outerplanar, so the hub always breaks planarity (Tetrahedron
//     plus hub is K5). Use it for inputs outside the planar class.
//
// Complexity: O(V+E) with V ≤ 21, E ≤ 50.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %s: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %s: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		ids := indexIDs(cfg.idFn, n)
		if err := addVertices(g, methodPlatonicSolid, ids); err != nil {
			return err
		}
		for _, ch := range edges {
			if err := addEdge(g, methodPlatonicSolid, ids[ch.U], ids[ch.V]); err != nil {
				return err
			}
		}

		if withCenter {
			if err := g.AddVertex(CenterVertexID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, CenterVertexID, err)
			}
			return spokes(g, methodPlatonicSolid, ids)
		}

		return nil
	}
}
