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

// Font is the capability set the core consumes from a font-table parser.
// FontRef and FontVec implement it over golang.org/x/image/font/sfnt, and
// FontTrueType (from NewFontVecFromTrueType) over github.com/golang/freetype/truetype;
// any other decoder can be wrapped the same way. All methods report
// unscaled (font-unit) quantities; see ScaleFont for pixel-scaled access.
type Font interface {
	// UnitsPerEm returns the font's em size in font units, and false if the
	// font does not carry a usable value (pt_to_px_scale then fails too).
	UnitsPerEm() (float32, bool)

	// AscentUnscaled, DescentUnscaled and LineGapUnscaled return vertical
	// metrics in font units, measured from the baseline.
	AscentUnscaled() float32
	DescentUnscaled() float32
	LineGapUnscaled() float32

	// ItalicAngle returns the font's slant in degrees counter-clockwise
	// from vertical, or 0 if the font does not specify one.
	ItalicAngle() float32

	// GlyphId maps a codepoint to a glyph index, or GlyphId(0) (.notdef)
	// if the font has no mapping for r.
	GlyphId(r rune) GlyphId

	// HAdvanceUnscaled, HSideBearingUnscaled, VAdvanceUnscaled and
	// VSideBearingUnscaled return per-glyph metrics in font units, 0 if
	// undefined for id.
	HAdvanceUnscaled(id GlyphId) float32
	HSideBearingUnscaled(id GlyphId) float32
	VAdvanceUnscaled(id GlyphId) float32
	VSideBearingUnscaled(id GlyphId) float32

	// KernUnscaled returns the kerning adjustment between a glyph pair in
	// font units, 0 if the font has no kerning data for the pair.
	KernUnscaled(first, second GlyphId) float32

	// Outline returns the unscaled outline for id, and false if the glyph
	// has no outline or its bounds are degenerate or non-finite.
	Outline(id GlyphId) (Outline, bool)

	// GlyphCount returns the number of glyphs in the font.
	GlyphCount() int

	// CodepointIds iterates the font's codepoint-to-glyph mapping. Each
	// GlyphId is yielded at most once, paired with the first rune (in
	// iteration order) that maps to it.
	CodepointIds() iter.Seq2[GlyphId, rune]

	// GlyphRasterImage returns an embedded bitmap for id sized for the
	// given nominal pixels-per-em, or false if the font has none.
	GlyphRasterImage(id GlyphId, pixelsPerEm uint16) (GlyphImage, bool)

	// GlyphSvgImage returns the embedded SVG document covering id, or
	// false if the font has no SVG table entry for it.
	GlyphSvgImage(id GlyphId) (GlyphSvg, bool)
}

// PtToPxScale converts a point size to a PxScale for f, using the
// conventional 96/72 px-per-pt display ratio. It returns false if f has no
// usable UnitsPerEm.
func PtToPxScale(f Font, pt float32) (PxScale, bool) {
	upem, ok := f.UnitsPerEm()
	if !ok || upem <= 0 {
		return PxScale{}, false
	}
	// height_unscaled for a Font (as opposed to a ScaleFont) is its units
	// per em: a PxScale of upem renders the font at a 1:1 font-unit-to-pixel
	// ratio, against which pt*96/72 is then applied.
	px := pt * (96.0 / 72.0)
	return PxScale{X: px, Y: px}, true
}

// ScaleFont is the capability exposed by pairing a Font with a PxScale: it
// converts unscaled metrics to pixel units by multiplying by the per-axis
// scale factor (scale / font.UnitsPerEm()).
type ScaleFont interface {
	Font

	// Scale returns the PxScale this view was constructed with.
	Scale() PxScale

	// ScaleFactor returns the per-axis unscaled-to-pixel multiplier.
	ScaleFactor() PxScaleFactor

	// Height returns the pixel height of a line of text: Scale().Y.
	Height() float32

	HAdvanceScaled(id GlyphId) float32
	HSideBearingScaled(id GlyphId) float32
	VAdvanceScaled(id GlyphId) float32
	VSideBearingScaled(id GlyphId) float32
	AscentScaled() float32
	DescentScaled() float32
	LineGapScaled() float32
	KernScaled(first, second GlyphId) float32

	// OutlineGlyph builds a drawable, positioned OutlinedGlyph for g. It
	// delegates to the underlying Font — g already carries its own scale —
	// and returns false if the glyph has no outline.
	OutlineGlyph(g Glyph) (OutlinedGlyph, bool)
}

// scaledFont is the concrete ScaleFont returned by AsScaled/IntoScaled.
type scaledFont struct {
	Font
	scale PxScale
	hFac  float32
	vFac  float32
}

// AsScaled pairs f with scale, returning a ScaleFont that converts f's
// unscaled metrics to pixel units. f is referenced, not copied.
func AsScaled(f Font, scale PxScale) ScaleFont {
	upem, ok := f.UnitsPerEm()
	if !ok || upem <= 0 {
		upem = 1
	}
	return &scaledFont{
		Font:  f,
		scale: scale,
		hFac:  scale.X / upem,
		vFac:  scale.Y / upem,
	}
}

// IntoScaled is identical to AsScaled; Rust's ab_glyph distinguishes
// borrowing (as_scaled) from consuming (into_scaled) a Font value, a
// distinction Go's value semantics make unnecessary. It is kept as a
// separate name so call sites can express "I'm done with f as an unscaled
// Font after this" the way the original API does.
func IntoScaled(f Font, scale PxScale) ScaleFont {
	return AsScaled(f, scale)
}

func (s *scaledFont) Scale() PxScale { return s.scale }

func (s *scaledFont) ScaleFactor() PxScaleFactor {
	return PxScaleFactor{Horizontal: s.hFac, Vertical: s.vFac}
}

func (s *scaledFont) Height() float32 { return s.scale.Y }

func (s *scaledFont) HAdvanceScaled(id GlyphId) float32 {
	return s.Font.HAdvanceUnscaled(id) * s.hFac
}

func (s *scaledFont) HSideBearingScaled(id GlyphId) float32 {
	return s.Font.HSideBearingUnscaled(id) * s.hFac
}

func (s *scaledFont) VAdvanceScaled(id GlyphId) float32 {
	return s.Font.VAdvanceUnscaled(id) * s.vFac
}

func (s *scaledFont) VSideBearingScaled(id GlyphId) float32 {
	return s.Font.VSideBearingUnscaled(id) * s.vFac
}

func (s *scaledFont) AscentScaled() float32 {
	return s.Font.AscentUnscaled() * s.vFac
}

func (s *scaledFont) DescentScaled() float32 {
	return s.Font.DescentUnscaled() * s.vFac
}

func (s *scaledFont) LineGapScaled() float32 {
	return s.Font.LineGapUnscaled() * s.vFac
}

func (s *scaledFont) KernScaled(first, second GlyphId) float32 {
	return s.Font.KernUnscaled(first, second) * s.hFac
}

func (s *scaledFont) OutlineGlyph(g Glyph) (OutlinedGlyph, bool) {
	return OutlineGlyphFor(s.Font, g)
}

// GlyphBounds returns the layout bounding box of g (as positioned by
// g.Position) on sf: the horizontal extent is the side bearing to the
// advance width, the vertical extent is the ascent to the descent, all in
// pixel space (y increasing downward, matching Glyph.Position).
func GlyphBounds(sf ScaleFont, g Glyph) Rect {
	hsb := sf.HSideBearingScaled(g.Id)
	hadv := sf.HAdvanceScaled(g.Id)
	asc := sf.AscentScaled()
	desc := sf.DescentScaled()
	pos := g.Position
	return Rect{
		Min: Point{X: pos.X - hsb, Y: pos.Y - asc},
		Max: Point{X: pos.X + hadv, Y: pos.Y - desc},
	}
}

// OutlineGlyphFor builds the drawable OutlinedGlyph for g using f's
// unscaled outline and g's own scale/position. It is the free-function
// form used by both Font callers and ScaleFont.OutlineGlyph.
func OutlineGlyphFor(f Font, g Glyph) (OutlinedGlyph, bool) {
	outline, ok := f.Outline(g.Id)
	if !ok {
		return OutlinedGlyph{}, false
	}
	upem, ok := f.UnitsPerEm()
	if !ok || upem <= 0 {
		upem = 1
	}
	factor := PxScaleFactor{
		Horizontal: g.Scale.X / upem,
		Vertical:   g.Scale.Y / upem,
	}
	return newOutlinedGlyph(g, outline, factor), true
}
