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

// Package raster implements a scanline, analytic-area rasterizer: it turns
// straight edges and Bézier curves into per-pixel fractional coverage
// without supersampling. It has no dependency on font parsing or the glyph
// package — it operates purely on Points and produces coverage callbacks,
// so it can be exercised (and benchmarked) on its own.
package raster

import "math"

// Point is a 2D coordinate in the rasterizer's device space (pixels, y
// increasing downward). It mirrors glyph.Point but is declared separately
// so this package has zero dependencies outside the standard library.
type Point struct {
	X, Y float32
}

// Rasterizer accumulates signed coverage contributions from lines and
// curves into an internal grid, then sweeps the grid once to produce
// per-pixel coverage in [0,1]. Create one and reuse it across glyphs via
// Reset to avoid repeated allocation.
//
// A Rasterizer is not safe for concurrent use; give each goroutine its own.
type Rasterizer struct {
	w, h int

	// acc holds one signed-area delta per pixel, row-major, plus a
	// padding tail of accumulatorPadding extra cells. An edge that brushes
	// the right margin can round up to column index w (e.g. when x_hi is
	// exactly an integer); that write lands in the next row's first cell,
	// where the single running sum of ForEachPixel carries it, and on the
	// last row the padding tail absorbs it.
	acc []float32
}

// accumulatorPadding is the number of extra cells reserved past w*h.
const accumulatorPadding = 4

// horizontalEpsilon is the minimum |Δy| for an edge to contribute; edges
// flatter than this are treated as horizontal and skipped (§4.1).
const horizontalEpsilon = 1e-6

// New allocates a Rasterizer for a w×h pixel grid, zeroed.
func New(w, h int) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(w, h)
	return r
}

// Reset resizes (if needed) and clears the rasterizer for reuse at w×h.
// The backing allocation is kept and grown, never shrunk, so repeated
// Reset calls at similar sizes amortize to zero allocations.
func (r *Rasterizer) Reset(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.w, r.h = w, h
	need := w*h + accumulatorPadding
	if cap(r.acc) < need {
		r.acc = make([]float32, need)
	} else {
		r.acc = r.acc[:need]
		clear(r.acc)
	}
}

// Dimensions returns the grid's width and height in pixels.
func (r *Rasterizer) Dimensions() (w, h int) {
	return r.w, r.h
}

// cell returns a clamped write index into acc for row y, column x. Columns
// left of the grid collapse into column 0 (their contribution still needs
// to be carried rightward by the sweep); columns at or past the right edge
// address the following cells in row-major order, and any index past the
// padding tail is clamped to its last cell rather than panicking.
func (r *Rasterizer) cell(y, x int) int {
	if x < 0 {
		x = 0
	}
	max := r.w*r.h + accumulatorPadding - 1
	idx := y*r.w + x
	if idx > max {
		idx = max
	}
	return idx
}

// DrawLine adds one straight edge from p0 to p1 to the accumulator.
func (r *Rasterizer) DrawLine(p0, p1 Point) {
	if r.w <= 0 || r.h <= 0 {
		return
	}

	dy := p1.Y - p0.Y
	if dy > -horizontalEpsilon && dy < horizontalEpsilon {
		return
	}

	dir := float32(1)
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		dir = -1
	}

	if p1.Y <= 0 || p0.Y >= float32(r.h) {
		return
	}

	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)

	x := p0.X
	y0 := p0.Y
	if y0 < 0 {
		x += dxdy * (0 - y0)
		y0 = 0
	}
	y1 := p1.Y
	if y1 > float32(r.h) {
		y1 = float32(r.h)
	}

	yStart := int(math.Floor(float64(y0)))
	if yStart < 0 {
		yStart = 0
	}
	yEnd := int(math.Ceil(float64(y1)))
	if yEnd > r.h {
		yEnd = r.h
	}

	for y := yStart; y < yEnd; y++ {
		rowTop := max32(float32(y), y0)
		rowBot := min32(float32(y+1), y1)
		dyRow := rowBot - rowTop
		if dyRow <= 0 {
			continue
		}

		xNext := x + dxdy*dyRow
		d := dyRow * dir

		r.accumulateRow(y, x, xNext, d)

		x = xNext
	}
}

// accumulateRow distributes one row-local edge segment's signed height d
// (running from x to xNext, both within scanline row y) across the pixel
// columns it crosses, using the closed-form area of a line slice through a
// unit square (§4.1).
func (r *Rasterizer) accumulateRow(y int, x, xNext, d float32) {
	xLo, xHi := x, xNext
	if xLo > xHi {
		xLo, xHi = xHi, xLo
	}

	iLo := int(math.Floor(float64(xLo)))
	iHi := int(math.Ceil(float64(xHi)))

	if iHi <= iLo+1 {
		xMidFrac := 0.5*(x+xNext) - floorf(xLo)
		r.acc[r.cell(y, iLo)] += d * (1 - xMidFrac)
		r.acc[r.cell(y, iLo+1)] += d * xMidFrac
		return
	}

	span := xHi - xLo
	s := float32(1) / span
	x0f := xLo - floorf(xLo)
	x1f := xHi - ceilf(xHi) + 1

	a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
	am := 0.5 * s * x1f * x1f

	r.acc[r.cell(y, iLo)] += d * a0

	if iHi-iLo == 2 {
		r.acc[r.cell(y, iLo+1)] += d * (1 - a0 - am)
	} else {
		a1 := s * (1.5 - x0f)
		r.acc[r.cell(y, iLo+1)] += d * (a1 - a0)

		for i := iLo + 2; i <= iHi-2; i++ {
			r.acc[r.cell(y, i)] += d * s
		}

		aLast := a1 + float32(iHi-iLo-3)*s
		r.acc[r.cell(y, iHi-1)] += d * (1 - aLast - am)
	}

	r.acc[r.cell(y, iHi)] += d * am
}

// DrawQuad adds a quadratic Bézier from p0 via control point c to p1,
// approximated by straight line segments. The segment count is chosen from
// the curve's deviation from a straight chord (§4.1): a nearly-straight
// curve draws as a single line, a sharply curved one is split finely enough
// that the approximation error stays visually negligible.
func (r *Rasterizer) DrawQuad(p0, c, p1 Point) {
	dev := Point{X: p0.X - 2*c.X + p1.X, Y: p0.Y - 2*c.Y + p1.Y}
	devSq := float64(dev.X*dev.X + dev.Y*dev.Y)

	if devSq < 1.0/3.0 {
		r.DrawLine(p0, p1)
		return
	}

	n := 1 + int(math.Pow(3*devSq, 0.25))

	prev := p0
	for k := 1; k <= n; k++ {
		t := float32(k) / float32(n)
		pt := quadAt(p0, c, p1, t)
		r.DrawLine(prev, pt)
		prev = pt
	}
}

// DrawCubic adds a cubic Bézier from p0 via control points c0, c1 to p1,
// approximated by recursive midpoint (de Casteljau) subdivision until the
// flatness test in isFlatCubic passes or the recursion depth limit is hit.
func (r *Rasterizer) DrawCubic(p0, c0, c1, p1 Point) {
	r.drawCubicRec(p0, c0, c1, p1, 0)
}

// maxCubicDepth bounds the recursive subdivision in DrawCubic. Together
// with cubicFlatnessSq, this constant is part of the rasterizer's
// observable contract (it affects reference-hash tests) — changing it
// requires regenerating any stored reference images.
const maxCubicDepth = 16

// cubicFlatnessSq is the squared flatness tolerance used by isFlatCubic:
// flatness = longPathLen² − chordLen², compared against 0.35².
const cubicFlatnessSq = 0.35 * 0.35

func (r *Rasterizer) drawCubicRec(p0, c0, c1, p1 Point, depth int) {
	if depth >= maxCubicDepth || isFlatCubic(p0, c0, c1, p1) {
		r.DrawLine(p0, p1)
		return
	}

	// de Casteljau subdivision at t=1/2.
	p01 := mid(p0, c0)
	p12 := mid(c0, c1)
	p23 := mid(c1, p1)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	midPt := mid(p012, p123)

	r.drawCubicRec(p0, p01, p012, midPt, depth+1)
	r.drawCubicRec(midPt, p123, p23, p1, depth+1)
}

// isFlatCubic reports whether the control polygon of (p0,c0,c1,p1) is close
// enough to its chord to approximate with a single line segment.
func isFlatCubic(p0, c0, c1, p1 Point) bool {
	longPath := p0.dist(c0) + c0.dist(c1) + c1.dist(p1)
	chord := p0.dist(p1)
	flatness := longPath*longPath - chord*chord
	return flatness <= cubicFlatnessSq
}

// ForEachPixel sweeps the grid in row-major order, calling f(index,
// coverage) once per pixel. coverage is always in [0,1].
func (r *Rasterizer) ForEachPixel(f func(index int, coverage float32)) {
	idx := 0
	var acc float32
	for y := 0; y < r.h; y++ {
		row := r.acc[y*r.w : y*r.w+r.w]
		for x := 0; x < r.w; x++ {
			acc += row[x]
			cov := acc
			if cov < 0 {
				cov = -cov
			}
			if cov > 1 {
				cov = 1
			}
			f(idx, cov)
			idx++
		}
	}
}

// ForEachPixel2D is ForEachPixel with the index decomposed into (x, y).
func (r *Rasterizer) ForEachPixel2D(f func(x, y int, coverage float32)) {
	r.ForEachPixel(func(index int, coverage float32) {
		f(index%r.w, index/r.w, coverage)
	})
}

func quadAt(p0, c, p1 Point, t float32) Point {
	omt := 1 - t
	return Point{
		X: omt*omt*p0.X + 2*omt*t*c.X + t*t*p1.X,
		Y: omt*omt*p0.Y + 2*omt*t*c.Y + t*t*p1.Y,
	}
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func (p Point) dist(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func floorf(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func ceilf(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}
