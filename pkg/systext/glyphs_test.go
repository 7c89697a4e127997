// pkg/systext/glyphs_test.go
// Copyright(c) 2024 systext contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package systext

import (
	"testing"
)

func TestGlyphsHaveEvenLength(t *testing.T) {
	font := StrokeFont()
	for _, r := range font.Runes() {
		g, _ := font.Lookup(r)
		if len(g) == 0 {
			t.Errorf("%c: empty glyph", r)
		}
		if len(g)%2 != 0 {
			t.Errorf("%c: odd number of points (%d) in glyph", r, len(g))
		}
	}
}

func TestGlyphsInUnitCell(t *testing.T) {
	font := StrokeFont()
	for _, r := range font.Runes() {
		g, _ := font.Lookup(r)
		for i, p := range g {
			if p[0] < 0 || p[0] > 1 || p[1] < 0 || p[1] > 1 {
				t.Errorf("%c: point %d %v outside the unit cell", r, i, p)
			}
		}
		for i := 0; i+1 < len(g); i += 2 {
			if g[i] == g[i+1] {
				t.Errorf("%c: degenerate segment %d at %v", r, i/2, g[i])
			}
		}
	}
}

func TestUppercaseCoverage(t *testing.T) {
	font := StrokeFont()
	runes := font.Runes()
	if len(runes) != 26 {
		t.Errorf("expected 26 glyphs, got %d", len(runes))
	}
	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := font.Lookup(r); !ok {
			t.Errorf("%c: no glyph", r)
		}
	}
	for i := 1; i < len(runes); i++ {
		if runes[i-1] >= runes[i] {
			t.Errorf("Runes not sorted: %c before %c", runes[i-1], runes[i])
		}
	}
}

func TestUnmappedRunes(t *testing.T) {
	font := StrokeFont()
	for _, r := range "abxz0123456789 .,!?\n\t-" {
		if _, ok := font.Lookup(r); ok {
			t.Errorf("%q: unexpectedly has a glyph", r)
		}
	}
}

func TestOriginalGlyphs(t *testing.T) {
	font := StrokeFont()
	for _, tc := range []struct {
		r      rune
		points Glyph
	}{
		{'A', Glyph{{0, 1}, {0.5, 0}, {0.5, 0}, {1, 1}, {0.25, 0.5}, {0.75, 0.5}}},
		{'E', Glyph{{1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, 1}, {1, 1}, {0, 0.5}, {0.5, 0.5}}},
		{'H', Glyph{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 0.5}, {1, 0.5}}},
		{'L', Glyph{{0, 0}, {0, 1}, {0, 1}, {1, 1}}},
		{'O', Glyph{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 1}, {0, 0}}},
	} {
		g, ok := font.Lookup(tc.r)
		if !ok {
			t.Errorf("%c: missing", tc.r)
			continue
		}
		if len(g) != len(tc.points) {
			t.Errorf("%c: got %d points, expected %d", tc.r, len(g), len(tc.points))
			continue
		}
		for i := range g {
			if g[i] != tc.points[i] {
				t.Errorf("%c: point %d: got %v, expected %v", tc.r, i, g[i], tc.points[i])
			}
		}
	}
}
