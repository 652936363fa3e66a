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

// GlyphId is a glyph index into a font's glyph table, in [0, glyph_count).
type GlyphId uint16

// PxScale is the pixel scale at which a glyph or font is rendered. Y is the
// pixel height of a line of text; X defaults to the same value but may
// differ to support anisotropic (non-uniform) stretching.
type PxScale struct {
	X, Y float32
}

// NewPxScale returns a uniform PxScale with X == Y == height.
func NewPxScale(height float32) PxScale {
	return PxScale{X: height, Y: height}
}

// PxScaleFactor is the per-axis multiplier that converts unscaled
// (font-unit) metrics to pixel units: Horizontal = scale.X/unitsPerEm,
// Vertical = scale.Y/unitsPerEm.
type PxScaleFactor struct {
	Horizontal, Vertical float32
}

// Glyph identifies a glyph, the scale it should be drawn at, and its
// origin position in pixel space.
type Glyph struct {
	Id       GlyphId
	Scale    PxScale
	Position Point
}
