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

import "fmt"

// CurveKind tags which variant an OutlineCurve holds.
type CurveKind uint8

const (
	// CurveLine is a straight edge from P0 to P1.
	CurveLine CurveKind = iota
	// CurveQuad is a quadratic Bézier from P0 via C0 to P1.
	CurveQuad
	// CurveCubic is a cubic Bézier from P0 via C0, C1 to P1.
	CurveCubic
)

// OutlineCurve is one segment of a glyph outline, in font units. All three
// variants share a single struct (rather than heap-allocated interface
// values) so an Outline's curve list is one contiguous, allocation-free
// slice; Kind selects which fields are meaningful:
//
//	CurveLine:  P0, P1
//	CurveQuad:  P0, C0, P1
//	CurveCubic: P0, C0, C1, P1
type OutlineCurve struct {
	Kind   CurveKind
	P0, P1 Point
	C0, C1 Point
}

// Line returns a straight-edge curve.
func Line(p0, p1 Point) OutlineCurve {
	return OutlineCurve{Kind: CurveLine, P0: p0, P1: p1}
}

// Quad returns a quadratic Bézier curve.
func Quad(p0, c, p1 Point) OutlineCurve {
	return OutlineCurve{Kind: CurveQuad, P0: p0, C0: c, P1: p1}
}

// Cubic returns a cubic Bézier curve.
func Cubic(p0, c0, c1, p1 Point) OutlineCurve {
	return OutlineCurve{Kind: CurveCubic, P0: p0, C0: c0, C1: c1, P1: p1}
}

// String renders a curve for debug output, e.g. when dumping a glyph's
// outline during test failures.
func (c OutlineCurve) String() string {
	switch c.Kind {
	case CurveLine:
		return fmt.Sprintf("Line(%v, %v)", c.P0, c.P1)
	case CurveQuad:
		return fmt.Sprintf("Quad(%v, %v, %v)", c.P0, c.C0, c.P1)
	case CurveCubic:
		return fmt.Sprintf("Cubic(%v, %v, %v, %v)", c.P0, c.C0, c.C1, c.P1)
	default:
		return "Curve(?)"
	}
}

// Outline is an unscaled glyph outline: its bounding rectangle in font
// units plus the ordered list of curves that make up its contours.
//
// A valid Outline always has a non-empty Curves slice when Bounds is
// non-degenerate; degenerate outlines (e.g. space glyphs) are reported by
// the Font interface as "no outline" (Outline returns false) rather than
// constructed here, see font.go.
type Outline struct {
	Bounds Rect
	Curves []OutlineCurve
}

// outlineBounds computes the bounding rectangle of a curve list's end and
// control points. It contains every curve but can be larger than the curves
// themselves, since a Bézier need not reach its control points. Used by
// outlineBuilder.finish and by tests that synthesize outlines directly.
func outlineBounds(curves []OutlineCurve) (Rect, bool) {
	if len(curves) == 0 {
		return Rect{}, false
	}
	first := true
	var bounds Rect
	extend := func(p Point) {
		if first {
			bounds = Rect{Min: p, Max: p}
			first = false
			return
		}
		if p.X < bounds.Min.X {
			bounds.Min.X = p.X
		}
		if p.Y < bounds.Min.Y {
			bounds.Min.Y = p.Y
		}
		if p.X > bounds.Max.X {
			bounds.Max.X = p.X
		}
		if p.Y > bounds.Max.Y {
			bounds.Max.Y = p.Y
		}
	}
	for _, c := range curves {
		extend(c.P0)
		extend(c.P1)
		switch c.Kind {
		case CurveQuad:
			extend(c.C0)
		case CurveCubic:
			extend(c.C0)
			extend(c.C1)
		}
	}
	return bounds, true
}
