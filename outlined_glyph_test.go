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

import "testing"

// TestPxBoundsSubpixelStable checks §4.4's invariant: moving a glyph's
// position by a whole number of pixels, without changing its subpixel
// fraction, shifts px_bounds by exactly that whole number — it never
// perturbs the bounding box's width or height.
func TestPxBoundsSubpixelStable(t *testing.T) {
	outline := Outline{
		Bounds: Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 500, Y: 700}},
		Curves: []OutlineCurve{Line(Pt(0, 0), Pt(500, 700))},
	}
	factor := PxScaleFactor{Horizontal: 0.02, Vertical: 0.02} // 20px / 1000 upem

	const frac = float32(0.3)
	for _, intOffset := range []float32{0, 1, 7, 100} {
		g := Glyph{Id: 1, Position: Point{X: intOffset + frac, Y: intOffset + frac}}
		og := newOutlinedGlyph(g, outline, factor)

		base := newOutlinedGlyph(Glyph{Id: 1, Position: Point{X: frac, Y: frac}}, outline, factor)

		gotW, gotH := og.PxBounds().Width(), og.PxBounds().Height()
		wantW, wantH := base.PxBounds().Width(), base.PxBounds().Height()
		if gotW != wantW || gotH != wantH {
			t.Errorf("offset %v: px_bounds size = (%v,%v), want (%v,%v)", intOffset, gotW, gotH, wantW, wantH)
		}

		gotMinX := og.PxBounds().Min.X
		wantMinX := base.PxBounds().Min.X + intOffset
		if gotMinX != wantMinX {
			t.Errorf("offset %v: px_bounds.Min.X = %v, want %v", intOffset, gotMinX, wantMinX)
		}
	}
}

func TestDrawUsingInvokesCallbackWithinBounds(t *testing.T) {
	outline := Outline{
		Bounds: Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 8, Y: 8}},
		Curves: []OutlineCurve{
			Line(Pt(0, 0), Pt(8, 0)),
			Line(Pt(8, 0), Pt(8, 8)),
			Line(Pt(8, 8), Pt(0, 8)),
			Line(Pt(0, 8), Pt(0, 0)),
		},
	}
	factor := PxScaleFactor{Horizontal: 1, Vertical: 1}
	g := Glyph{Id: 1, Position: Pt(0, 8)}
	og := newOutlinedGlyph(g, outline, factor)

	w := int(og.PxBounds().Width())
	h := int(og.PxBounds().Height())

	var count int
	og.Draw(func(x, y int, coverage float32) {
		count++
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Errorf("callback pixel (%d,%d) outside bounds %dx%d", x, y, w, h)
		}
	})
	if count != w*h {
		t.Errorf("want %d callbacks (one per pixel), got %d", w*h, count)
	}
}
