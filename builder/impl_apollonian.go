// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_apollonian.go — Apollonian(n): a stacked planar triangulation.
//
// Construction:
//   • Start from the triangle idFn(0), idFn(1), idFn(2) with one inner face.
//   • For i = 3..n-1, pick an inner face (a,b,c), add idFn(i) joined to a, b
//     and c, and replace the face by (a,b,i), (b,c,i), (a,c,i).
//   • The face is chosen by cfg.rng when set (WithSeed/WithRand), otherwise
//     round-robin over the face list, so the result is always reproducible.
//
// Every step keeps the graph a planar triangulation, and high-degree hubs
// appear quickly, which makes it a good stress input for Kempe chains.
//
// Contract: n ≥ 3 (else ErrTooFewVertices).
//
// Complexity: O(n) time and space (3 edges and 2 net faces per step).

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

const (
	methodApollonian   = "Apollonian"
	minApollonianNodes = 3
)

// Apollonian returns a Constructor for an n-vertex stacked triangulation.
func Apollonian(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minApollonianNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodApollonian, n, minApollonianNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg.idFn, n)
		if err := ring(g, methodApollonian, ids[:3], true); err != nil {
			return err
		}

		faces := [][3]int{{0, 1, 2}}
		for i := 3; i < n; i++ {
			k := (i - 3) % len(faces)
			if cfg.rng != nil {
				k = cfg.rng.Intn(len(faces))
			}
			f := faces[k]

			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodApollonian, ids[i], err)
			}
			for _, v := range f {
				if err := addEdge(g, methodApollonian, ids[i], ids[v]); err != nil {
					return err
				}
			}
			faces[k] = [3]int{f[0], f[1], i}
			faces = append(faces, [3]int{f[1], f[2], i}, [3]int{f[0], f[2], i})
		}

		return nil
	}
}
