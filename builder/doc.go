// Package builder constructs deterministic graph fixtures for the five-color
// algorithm: test inputs, benchmarks and the `fivecolor gen` command.
//
// Components:
//
//   - BuildGraph(bopts, cons...): creates a core.Graph and applies
//     Constructors in order.
//   - Planar topologies: Cycle, Path, Star, Wheel, Grid, TriGrid,
//     PlatonicSolid (the Icosahedron is 5-regular) and Apollonian, a seeded
//     stacked triangulation.
//   - Complete(n): K_n, planar only up to n = 4; K_7 and larger are the
//     canonical non-planar inputs.
//   - ID schemes: DefaultIDFn ("0","1",…), ExcelColumnIDFn ("A","B",…,"AA"),
//     SymbolNumberIDFn(prefix).
//   - Options: WithIDScheme, WithSeed, WithRand, WithSymbNumb, WithExcelColumnIDs.
//   - ByName/Kinds: string lookup for command-line front ends.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same vertex order
//     and neighbor order.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrOptionViolation, ErrConstructFailed) and never panic; option
//     constructors panic on nil arguments.
package builder
