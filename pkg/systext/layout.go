// pkg/systext/layout.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package systext

import (
	"github.com/strokefont/systext/pkg/math"
)

// TextLine is a run of text to be drawn. Position is the top-left corner
// of the first character cell; CharSize is the fixed advance per
// character (x) and per line break (y). Text may contain '\n' to start a
// new row.
type TextLine struct {
	Text     string
	Position [2]float32
	CharSize [2]float32
}

// glyphScale is the fraction of the character cell that a glyph's unit
// square is scaled to, leaving a gap between neighbors.
var glyphScale = [2]float32{0.8, 0.7}

// Layout returns the line segment endpoints for the given lines, laid out
// with the stroke font.
func Layout(lines []TextLine) [][2]float32 {
	return StrokeFont().Layout(lines)
}

// Layout converts the lines into a flat list of line segment endpoints;
// each consecutive pair of returned points is one segment. Characters
// without a glyph produce no geometry but still advance the cursor. The
// result depends only on lines and the table.
func (t *GlyphTable) Layout(lines []TextLine) [][2]float32 {
	var vertices [][2]float32
	for _, line := range lines {
		scale := math.Mul2f(glyphScale, line.CharSize)
		cursor := line.Position

		for _, ch := range line.Text {
			if g, ok := t.Lookup(ch); ok {
				for _, p := range g {
					// Glyph y points down; world y points up.
					vertices = append(vertices, [2]float32{cursor[0] + p[0]*scale[0], cursor[1] - p[1]*scale[1]})
				}
			}

			cursor[0] += line.CharSize[0]

			if ch == '\n' {
				cursor[0] = line.Position[0]
				cursor[1] -= line.CharSize[1]
			}
		}
	}
	return vertices
}

// Bounds returns the extent of the geometry that Layout would produce for
// the lines. The extent is empty if there is none.
func (t *GlyphTable) Bounds(lines []TextLine) math.Extent2D {
	return math.Extent2DFromPoints(t.Layout(lines))
}
