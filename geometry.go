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

// Package glyph loads OpenType/TrueType fonts, extracts glyph outlines and
// positions them in pixel space. Font-table decoding is delegated to
// golang.org/x/image/font/sfnt (or, via NewFontVecFromTrueType, to
// github.com/golang/freetype/truetype); this package turns the outlines
// those parsers hand back into scaled, drawable glyphs.
//
// Rasterization of the resulting outlines into per-pixel coverage lives in
// the sibling package github.com/go-glyph/glyph/raster.
package glyph

import "math"

// Point is a 2D point or vector of 32-bit floats.
type Point struct {
	X, Y float32
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp linearly interpolates between a and b: lerp(0) = a, lerp(1) = b.
func Lerp(t float32, a, b Point) Point {
	return a.Add(b.Sub(a).Mul(t))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Len()
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

// LenSquared returns the squared Euclidean length, avoiding a square root
// for callers that only need to compare magnitudes.
func (p Point) LenSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// Rect is an axis-aligned rectangle described by its two opposite corners.
//
// For unscaled outline bounds (font units) the y axis follows the font
// convention: y increases upward, so Min.Y is the lowest point of the
// outline and Max.Y the highest. For pixel bounds the y axis is flipped:
// y increases downward, so Min is the top-left corner and Max the
// bottom-right. Both conventions keep Width/Height non-negative for valid
// geometry; see §4.4 for where the flip happens.
type Rect struct {
	Min, Max Point
}

// Width returns max.X - min.X.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns max.Y - min.Y.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// valid reports whether r describes a non-degenerate, finite rectangle.
func (r Rect) valid() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y &&
		isFinite(r.Min.X) && isFinite(r.Min.Y) && isFinite(r.Max.X) && isFinite(r.Max.Y)
}

func isFinite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}
