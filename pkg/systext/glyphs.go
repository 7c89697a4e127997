// pkg/systext/glyphs.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package systext

import (
	"maps"
	"slices"
)

// Glyph is the stroke geometry of a single character: points in the unit
// cell [0,1]x[0,1] with y growing downward, taken two at a time as
// independent line segments. A Glyph always has an even number of points.
type Glyph [][2]float32

// GlyphTable maps characters to their glyphs. Tables are immutable once
// constructed and the glyphs they return must not be modified.
type GlyphTable struct {
	glyphs map[rune]Glyph
}

func (t *GlyphTable) Lookup(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Runes returns the characters the table has glyphs for, in increasing
// order.
func (t *GlyphTable) Runes() []rune {
	return slices.Sorted(maps.Keys(t.glyphs))
}

// StrokeFont returns the built-in table of uppercase stroke letters.
func StrokeFont() *GlyphTable {
	return &strokeFont
}

var strokeFont = GlyphTable{glyphs: map[rune]Glyph{
	'A': {{0, 1}, {0.5, 0}, {0.5, 0}, {1, 1}, {0.25, 0.5}, {0.75, 0.5}},
	'B': {{0, 0}, {0, 1}, {0, 0}, {0.75, 0}, {0.75, 0}, {1, 0.25}, {1, 0.25}, {0.75, 0.5},
		{0, 0.5}, {0.75, 0.5}, {0.75, 0.5}, {1, 0.75}, {1, 0.75}, {0.75, 1}, {0.75, 1}, {0, 1}},
	'C': {{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, 1}, {1, 1}},
	'D': {{0, 0}, {0, 1}, {0, 0}, {0.6, 0}, {0.6, 0}, {1, 0.4}, {1, 0.4}, {1, 0.6},
		{1, 0.6}, {0.6, 1}, {0.6, 1}, {0, 1}},
	'E': {{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, 1}, {1, 1}, {0, 0.5}, {0.5, 0.5}},
	'F': {{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, 0.5}, {0.5, 0.5}},
	'G': {{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, 1}, {1, 1}, {1, 1}, {1, 0.5}, {1, 0.5}, {0.5, 0.5}},
	'H': {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 0.5}, {1, 0.5}},
	'I': {{0, 0}, {1, 0}, {0.5, 0}, {0.5, 1}, {0, 1}, {1, 1}},
	'J': {{1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 1}, {0, 0.75}},
	'K': {{0, 0}, {0, 1}, {1, 0}, {0, 0.5}, {0, 0.5}, {1, 1}},
	'L': {{0, 0}, {0, 1}, {0, 1}, {1, 1}},
	'M': {{0, 1}, {0, 0}, {0, 0}, {0.5, 0.5}, {0.5, 0.5}, {1, 0}, {1, 0}, {1, 1}},
	'N': {{0, 1}, {0, 0}, {0, 0}, {1, 1}, {1, 1}, {1, 0}},
	'O': {{0, 0}, {1, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 1}, {0, 0}},
	'P': {{0, 1}, {0, 0}, {0, 0}, {1, 0}, {1, 0}, {1, 0.5}, {1, 0.5}, {0, 0.5}},
	'Q': {{0, 0}, {1, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 1}, {0, 0}, {0.5, 0.5}, {1, 1}},
	'R': {{0, 1}, {0, 0}, {0, 0}, {1, 0}, {1, 0}, {1, 0.5}, {1, 0.5}, {0, 0.5}, {0.5, 0.5}, {1, 1}},
	'S': {{1, 0}, {0, 0}, {0, 0}, {0, 0.5}, {0, 0.5}, {1, 0.5}, {1, 0.5}, {1, 1}, {1, 1}, {0, 1}},
	'T': {{0, 0}, {1, 0}, {0.5, 0}, {0.5, 1}},
	'U': {{0, 0}, {0, 1}, {0, 1}, {1, 1}, {1, 1}, {1, 0}},
	'V': {{0, 0}, {0.5, 1}, {0.5, 1}, {1, 0}},
	'W': {{0, 0}, {0.25, 1}, {0.25, 1}, {0.5, 0.5}, {0.5, 0.5}, {0.75, 1}, {0.75, 1}, {1, 0}},
	'X': {{0, 0}, {1, 1}, {1, 0}, {0, 1}},
	'Y': {{0, 0}, {0.5, 0.5}, {1, 0}, {0.5, 0.5}, {0.5, 0.5}, {0.5, 1}},
	'Z': {{0, 0}, {1, 0}, {1, 0}, {0, 1}, {0, 1}, {1, 1}},
}}
