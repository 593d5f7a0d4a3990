package coloring

import (
	"fmt"
	"math/bits"
	"strings"
)

// NumColors is the size of the fixed color universe.
const NumColors = 5

// Color is one value of the fixed five-element palette.
type Color uint8

// The palette. Only equality and set membership are meaningful; the numeric
// order is used solely to make "pick any available color" deterministic.
const (
	Blue Color = iota
	Red
	Green
	White
	Black
)

var colorNames = [NumColors]string{"blue", "red", "green", "white", "black"}

// colorHex backs Hex; black and white keep their literal values.
var colorHex = [NumColors]string{"#2f6fdb", "#d93b3b", "#2e9e4f", "#ffffff", "#000000"}

// Palette returns the five colors in declaration order.
func Palette() []Color { return []Color{Blue, Red, Green, White, Black} }

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool { return c < NumColors }

// String returns the lowercase color name, or "color(N)" for invalid values.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Hex returns an RGB hex code suitable for renderers.
func (c Color) Hex() string {
	if !c.Valid() {
		return "#808080"
	}
	return colorHex[c]
}

// ParseColor maps a color name (case-insensitive, surrounding space ignored)
// back to its Color.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, cn := range colorNames {
		if cn == n {
			return Color(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Set is a subset of the palette stored as a bitmask.
type Set uint8

// Full is the whole palette.
const Full Set = 1<<NumColors - 1

// SetOf returns the set containing exactly cs.
func SetOf(cs ...Color) Set {
	var s Set
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// Add returns s ∪ {c}. Invalid colors are ignored.
func (s Set) Add(c Color) Set {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Has reports whether c ∈ s.
func (s Set) Has(c Color) bool { return c.Valid() && s&(1<<c) != 0 }

// Len returns |s|.
func (s Set) Len() int { return bits.OnesCount8(uint8(s & Full)) }

// Minus returns s \ o.
func (s Set) Minus(o Set) Set { return s &^ o & Full }

// First returns the lowest color in s; ok is false for the empty set.
func (s Set) First() (c Color, ok bool) {
	s &= Full
	if s == 0 {
		return 0, false
	}
	return Color(bits.TrailingZeros8(uint8(s))), true
}

// Colors lists the members of s in palette order.
func (s Set) Colors() []Color {
	out := make([]Color, 0, s.Len())
	for _, c := range Palette() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders s as {blue,red}.
func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Colors() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Available returns the palette colors not in used.
func Available(used Set) Set { return Full.Minus(used) }
