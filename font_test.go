// go-glyph - font loading and glyph rasterization
// Copyright (C) 2026  go-glyph contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyph

import "iter"

// mockFont is a minimal Font used to exercise AsScaled/GlyphBounds without a
// real font file: a single rectangular glyph, 1000 units per em, metrics modeled
// loosely on a monospace digit.
type mockFont struct{}

func (mockFont) UnitsPerEm() (float32, bool) { return 1000, true }
func (mockFont) AscentUnscaled() float32     { return 800 }
func (mockFont) DescentUnscaled() float32    { return -200 }
func (mockFont) LineGapUnscaled() float32    { return 100 }
func (mockFont) ItalicAngle() float32        { return 0 }

func (mockFont) GlyphId(r rune) GlyphId {
	if r == 'A' {
		return 1
	}
	return 0
}

func (mockFont) HAdvanceUnscaled(GlyphId) float32     { return 600 }
func (mockFont) HSideBearingUnscaled(GlyphId) float32 { return 50 }
func (mockFont) VAdvanceUnscaled(GlyphId) float32     { return 1000 }
func (mockFont) VSideBearingUnscaled(GlyphId) float32 { return 0 }
func (mockFont) KernUnscaled(GlyphId, GlyphId) float32 { return 0 }

func (mockFont) Outline(id GlyphId) (Outline, bool) {
	if id != 1 {
		return Outline{}, false
	}
	curves := []OutlineCurve{
		Line(Pt(0, 0), Pt(500, 0)),
		Line(Pt(500, 0), Pt(500, 700)),
		Line(Pt(500, 700), Pt(0, 700)),
		Line(Pt(0, 700), Pt(0, 0)),
	}
	bounds, _ := outlineBounds(curves)
	return Outline{Bounds: bounds, Curves: curves}, true
}

func (mockFont) GlyphCount() int { return 2 }

func (mockFont) CodepointIds() iter.Seq2[GlyphId, rune] {
	return func(yield func(GlyphId, rune) bool) {
		yield(1, 'A')
	}
}

func (mockFont) GlyphRasterImage(GlyphId, uint16) (GlyphImage, bool) { return GlyphImage{}, false }
func (mockFont) GlyphSvgImage(GlyphId) (GlyphSvg, bool)              { return GlyphSvg{}, false }
