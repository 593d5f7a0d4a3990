// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// impl_grid.go — Grid(rows, cols) and TriGrid(rows, cols) constructors.
//
// Canonical model:
//   • Vertex IDs use the fixed scheme "r_c" (row-major). This is a
//     deliberate exception to cfg.idFn to keep coordinates explicit.
//   • Grid: 4-neighborhood, edges Right then Bottom per cell.
//   • TriGrid: Grid plus the down-right diagonal of every cell, giving a
//     planar triangulation whose interior vertices have degree 6.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols) vertices and edges.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order per (r,c): Right, Bottom, then Diagonal if enabled.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

const (
	methodGrid    = "Grid"
	methodTriGrid = "TriGrid"
	minGridDim    = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return grid(methodGrid, rows, cols, false)
}

// TriGrid returns a Constructor that builds a rows×cols triangulated grid.
func TriGrid(rows, cols int) Constructor {
	return grid(methodTriGrid, rows, cols, true)
}

func grid(method string, rows, cols int, diagonal bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				method, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, method, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, method, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
				if diagonal && r+1 < rows && c+1 < cols {
					if err := addEdge(g, method, u, gridVertexID(r+1, c+1)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
