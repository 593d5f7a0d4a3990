package coloring

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for coloring operations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrNotPlanar indicates the planarity precondition failed: either a
	// non-empty remaining graph has no vertex of degree ≤ 5, or no Kempe
	// interchange could free a color for a degree-5 vertex.
	ErrNotPlanar = errors.New("coloring: graph is not planar")

	// ErrUncolored indicates a vertex that must already be colored is not.
	ErrUncolored = errors.New("coloring: vertex has no color")

	// ErrNoAvailableColor indicates every palette color is taken by the
	// neighbors of a vertex being reinserted.
	ErrNoAvailableColor = errors.New("coloring: no available color")

	// ErrForeignColor indicates a Kempe component holds a vertex colored
	// with neither of the two interchanged colors.
	ErrForeignColor = errors.New("coloring: component vertex outside the two-color pair")

	// ErrAlreadyColored indicates a vertex was reinserted twice in one run.
	ErrAlreadyColored = errors.New("coloring: vertex already colored")

	// ErrUnknownColor indicates an unparseable or out-of-palette color.
	ErrUnknownColor = errors.New("coloring: unknown color")

	// ErrIncomplete indicates a vertex of the graph has no color.
	ErrIncomplete = errors.New("coloring: coloring is not total")

	// ErrImproper indicates an edge joins two equally colored vertices.
	ErrImproper = errors.New("coloring: adjacent vertices share a color")
)

// Coloring maps a vertex ID to its color. Absence means "not yet colored".
type Coloring map[string]Color

// Clone returns an independent copy.
func (c Coloring) Clone() Coloring {
	out := make(Coloring, len(c))
	for id, col := range c {
		out[id] = col
	}
	return out
}

// Used returns the set of colors that appear in c.
func (c Coloring) Used() Set {
	var s Set
	for _, col := range c {
		s = s.Add(col)
	}
	return s
}

// Counts returns how many vertices carry each color.
func (c Coloring) Counts() map[Color]int {
	out := make(map[Color]int, NumColors)
	for _, col := range c {
		out[col]++
	}
	return out
}

// Names returns the coloring as vertex → color name.
func (c Coloring) Names() map[string]string {
	out := make(map[string]string, len(c))
	for id, col := range c {
		out[id] = col.String()
	}
	return out
}

// FromNames parses a vertex → color name mapping.
func FromNames(names map[string]string) (Coloring, error) {
	out := make(Coloring, len(names))
	ids := make([]string, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		col, err := ParseColor(names[id])
		if err != nil {
			return nil, fmt.Errorf("coloring: vertex %q: %w", id, err)
		}
		out[id] = col
	}
	return out, nil
}

// NeighborColors returns the colors currently assigned to ids.
// Any id missing from c is a contract violation and fails with ErrUncolored.
//
// Complexity: O(len(ids)).
func NeighborColors(ids []string, c Coloring) (Set, error) {
	var used Set
	for _, id := range ids {
		col, ok := c[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUncolored, id)
		}
		used = used.Add(col)
	}
	return used, nil
}
