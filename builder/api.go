// SPDX-License-Identifier: MIT
// Package: fivecolor/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every factory returns a Constructor; implementations live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Every topology produced here is planar, so each one is a valid five-coloring input.
//     Complete(n) is the exception for n ≥ 5 and exists to exercise the failure path.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/fivecolor/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors (never panic) and keep vertex and edge emission order stable.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Kinds lists the names accepted by ByName, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ByName resolves a topology name and size to a Constructor, for command-line
// front ends. n is the vertex count, or the grid side for "grid" and "trigrid".
// Platonic solids ignore n. Unknown names fail with ErrOptionViolation.
func ByName(kind string, n int) (Constructor, error) {
	mk, ok := kinds[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("ByName: unknown kind %q (want one of %s): %w",
			kind, strings.Join(Kinds(), ", "), ErrOptionViolation)
	}
	return mk(n), nil
}

var kinds = map[string]func(n int) Constructor{
	"cycle":        Cycle,
	"path":         Path,
	"star":         Star,
	"wheel":        Wheel,
	"complete":     Complete,
	"apollonian":   Apollonian,
	"grid":         func(n int) Constructor { return Grid(n, n) },
	"trigrid":      func(n int) Constructor { return TriGrid(n, n) },
	"tetrahedron":  func(int) Constructor { return PlatonicSolid(Tetrahedron, false) },
	"cube":         func(int) Constructor { return PlatonicSolid(Cube, false) },
	"octahedron":   func(int) Constructor { return PlatonicSolid(Octahedron, false) },
	"dodecahedron": func(int) Constructor { return PlatonicSolid(Dodecahedron, false) },
	"icosahedron":  func(int) Constructor { return PlatonicSolid(Icosahedron, false) },
}
