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

func TestOutlineBuilderImplicitClose(t *testing.T) {
	var b outlineBuilder
	b.moveTo(Pt(0, 0))
	b.lineTo(Pt(4, 0))
	b.lineTo(Pt(4, 4))
	// no explicit close: finish should seal the contour back to (0,0).

	outline, ok := b.finish()
	if !ok {
		t.Fatal("finish() reported no outline for a valid triangle")
	}
	if len(outline.Curves) != 3 {
		t.Fatalf("want 3 curves (2 explicit + 1 implicit close), got %d", len(outline.Curves))
	}
	last := outline.Curves[2]
	if last.Kind != CurveLine || last.P0 != Pt(4, 4) || last.P1 != Pt(0, 0) {
		t.Errorf("implicit close curve = %+v, want Line(4,4 -> 0,0)", last)
	}
}

func TestOutlineBuilderExplicitCloseNoDuplicate(t *testing.T) {
	var b outlineBuilder
	b.moveTo(Pt(0, 0))
	b.lineTo(Pt(4, 0))
	b.lineTo(Pt(4, 4))
	b.lineTo(Pt(0, 0))
	b.close()

	outline, ok := b.finish()
	if !ok {
		t.Fatal("finish() reported no outline")
	}
	if len(outline.Curves) != 3 {
		t.Fatalf("want 3 curves (no duplicate close line), got %d", len(outline.Curves))
	}
}

func TestOutlineBuilderMultipleContoursEachClosed(t *testing.T) {
	var b outlineBuilder
	b.moveTo(Pt(0, 0))
	b.lineTo(Pt(2, 0))
	b.lineTo(Pt(2, 2))
	b.moveTo(Pt(10, 10))
	b.lineTo(Pt(12, 10))
	b.lineTo(Pt(12, 12))

	outline, ok := b.finish()
	if !ok {
		t.Fatal("finish() reported no outline")
	}
	if len(outline.Curves) != 6 {
		t.Fatalf("want 6 curves (2 contours x 3 edges each), got %d", len(outline.Curves))
	}
	if outline.Curves[2].P1 != Pt(0, 0) {
		t.Errorf("first contour should close back to (0,0), got %+v", outline.Curves[2])
	}
	if outline.Curves[5].P1 != Pt(10, 10) {
		t.Errorf("second contour should close back to (10,10), got %+v", outline.Curves[5])
	}
}

func TestOutlineBuilderEmptyIsNotOk(t *testing.T) {
	var b outlineBuilder
	if _, ok := b.finish(); ok {
		t.Error("finish() on an empty builder should report ok=false")
	}
}

func TestOutlineBuilderResetReusesBacking(t *testing.T) {
	var b outlineBuilder
	b.moveTo(Pt(0, 0))
	b.lineTo(Pt(1, 1))
	b.reset()

	if len(b.out) != 0 {
		t.Errorf("reset() should clear out to length 0, got %d", len(b.out))
	}
	if b.hasMove {
		t.Error("reset() should clear hasMove")
	}
}

func TestOutlineBoundsIncludesControlPoints(t *testing.T) {
	curves := []OutlineCurve{
		Line(Pt(0, 0), Pt(10, 0)),
		Quad(Pt(10, 0), Pt(15, 5), Pt(10, 10)),
		Line(Pt(10, 10), Pt(0, 0)),
	}
	bounds, ok := outlineBounds(curves)
	if !ok {
		t.Fatal("outlineBounds reported ok=false for non-empty curves")
	}
	if bounds.Min != (Point{X: 0, Y: 0}) {
		t.Errorf("Min = %v, want {0 0}", bounds.Min)
	}
	if bounds.Max != (Point{X: 15, Y: 10}) {
		t.Errorf("Max = %v, want {15 10}", bounds.Max)
	}
}
