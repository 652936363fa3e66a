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

import (
	"math"

	"github.com/go-glyph/glyph/raster"
)

// OutlinedGlyph is a glyph paired with its unscaled outline and scale
// factor. Its pixel bounding box (px_bounds) is computed once, here, at
// construction and cached; Draw and DrawUsing reuse it to size the
// rasterizer.
type OutlinedGlyph struct {
	glyph       Glyph
	outline     Outline
	scaleFactor PxScaleFactor
	pxBounds    Rect
}

// newOutlinedGlyph computes px_bounds for (glyph, outline, factor) per the
// subpixel-stable rounding rule: position is split into its truncated and
// fractional parts *before* floor/ceil is applied, so that two glyphs
// placed at the same subpixel fraction but different integer offsets
// produce bit-identical coverage patterns (only shifted).
func newOutlinedGlyph(g Glyph, outline Outline, factor PxScaleFactor) OutlinedGlyph {
	pxTrunc, pxFrac := truncFract(g.Position.X)
	pyTrunc, pyFrac := truncFract(g.Position.Y)

	h := factor.Horizontal
	v := factor.Vertical

	minX := float32(math.Floor(float64(outline.Bounds.Min.X*h+pxFrac))) + pxTrunc
	maxX := float32(math.Ceil(float64(outline.Bounds.Max.X*h+pxFrac))) + pxTrunc
	// y is flipped: font-unit y increases upward, pixel y increases
	// downward, so outline.Bounds.Min.Y (the lowest font-space point) maps
	// to the *largest* pixel-space y, and vice versa. Negating v folds
	// that flip into this one multiplication; see DrawUsing's scaleUp
	// for the matching negation on curve points.
	minY := float32(math.Floor(float64(outline.Bounds.Max.Y*(-v)+pyFrac))) + pyTrunc
	maxY := float32(math.Ceil(float64(outline.Bounds.Min.Y*(-v)+pyFrac))) + pyTrunc

	bounds := Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
	if bounds.Min.X > bounds.Max.X {
		bounds.Min.X, bounds.Max.X = bounds.Max.X, bounds.Min.X
	}
	if bounds.Min.Y > bounds.Max.Y {
		bounds.Min.Y, bounds.Max.Y = bounds.Max.Y, bounds.Min.Y
	}

	return OutlinedGlyph{glyph: g, outline: outline, scaleFactor: factor, pxBounds: bounds}
}

// truncFract splits x into its truncated (toward zero) integer part and the
// remaining fraction, x == trunc+fract.
func truncFract(x float32) (trunc, fract float32) {
	t := float32(math.Trunc(float64(x)))
	return t, x - t
}

// Glyph returns the glyph (id, scale, position) this outline belongs to.
func (g OutlinedGlyph) Glyph() Glyph { return g.glyph }

// Outline returns the unscaled font-unit outline.
func (g OutlinedGlyph) Outline() Outline { return g.outline }

// PxBoundsRect returns the conservative integer pixel bounding box.
func (g OutlinedGlyph) PxBoundsRect() Rect { return g.pxBounds }

// PxBounds is an alias for PxBoundsRect matching the common ab_glyph name.
func (g OutlinedGlyph) PxBounds() Rect { return g.pxBounds }

// Draw rasterizes the glyph and invokes cb(x, y, coverage) for each pixel
// inside PxBounds with non-zero coverage potential; x, y are offsets within
// the bounding box and coverage is in [0,1]. It allocates a fresh
// Rasterizer sized to the glyph; callers rasterizing many glyphs should
// prefer DrawUsing with a reused Rasterizer.
func (g OutlinedGlyph) Draw(cb func(x, y int, coverage float32)) {
	w := int(g.pxBounds.Width())
	h := int(g.pxBounds.Height())
	if w <= 0 || h <= 0 {
		return
	}
	r := raster.New(w, h)
	g.DrawUsing(r, cb)
}

// DrawUsing is Draw but rasterizes into a caller-supplied Rasterizer,
// resetting it first. This avoids a per-glyph allocation in hot text-layout
// loops: one Rasterizer can be reused across an entire run of glyphs.
func (g OutlinedGlyph) DrawUsing(r *raster.Rasterizer, cb func(x, y int, coverage float32)) {
	w := int(g.pxBounds.Width())
	h := int(g.pxBounds.Height())
	if w <= 0 || h <= 0 {
		return
	}
	r.Reset(w, h)

	h32 := g.scaleFactor.Horizontal
	v32 := g.scaleFactor.Vertical
	offset := g.glyph.Position.Sub(g.pxBounds.Min)

	scaleUp := func(p Point) raster.Point {
		sp := Point{X: p.X * h32, Y: p.Y * -v32}.Add(offset)
		return raster.Point{X: sp.X, Y: sp.Y}
	}

	for _, c := range g.outline.Curves {
		switch c.Kind {
		case CurveLine:
			r.DrawLine(scaleUp(c.P0), scaleUp(c.P1))
		case CurveQuad:
			r.DrawQuad(scaleUp(c.P0), scaleUp(c.C0), scaleUp(c.P1))
		case CurveCubic:
			r.DrawCubic(scaleUp(c.P0), scaleUp(c.C0), scaleUp(c.C1), scaleUp(c.P1))
		}
	}

	r.ForEachPixel2D(func(x, y int, coverage float32) {
		cb(x, y, coverage)
	})
}
