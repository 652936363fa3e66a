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

// FontVec is a Font that owns its backing byte slice, so the caller doesn't
// need to keep the original data alive separately (e.g. after reading a font
// file fully into memory and discarding the *os.File). It wraps a FontRef
// constructed over the data slice handed to ParseFontVec; no copy is made.
type FontVec struct {
	ref *FontRef
}

// ParseFontVec parses font data into a FontVec, taking ownership of data.
// Callers that already manage the buffer's lifetime themselves should use
// ParseFontRef instead to avoid a redundant reference.
func ParseFontVec(data []byte) (*FontVec, error) {
	ref, err := ParseFontRef(data)
	if err != nil {
		return nil, err
	}
	return &FontVec{ref: ref}, nil
}

func (f *FontVec) UnitsPerEm() (float32, bool)                { return f.ref.UnitsPerEm() }
func (f *FontVec) AscentUnscaled() float32                    { return f.ref.AscentUnscaled() }
func (f *FontVec) DescentUnscaled() float32                   { return f.ref.DescentUnscaled() }
func (f *FontVec) LineGapUnscaled() float32                   { return f.ref.LineGapUnscaled() }
func (f *FontVec) ItalicAngle() float32                        { return f.ref.ItalicAngle() }
func (f *FontVec) GlyphId(r rune) GlyphId                      { return f.ref.GlyphId(r) }
func (f *FontVec) HAdvanceUnscaled(id GlyphId) float32         { return f.ref.HAdvanceUnscaled(id) }
func (f *FontVec) HSideBearingUnscaled(id GlyphId) float32     { return f.ref.HSideBearingUnscaled(id) }
func (f *FontVec) VAdvanceUnscaled(id GlyphId) float32         { return f.ref.VAdvanceUnscaled(id) }
func (f *FontVec) VSideBearingUnscaled(id GlyphId) float32     { return f.ref.VSideBearingUnscaled(id) }
func (f *FontVec) KernUnscaled(first, second GlyphId) float32  { return f.ref.KernUnscaled(first, second) }
func (f *FontVec) Outline(id GlyphId) (Outline, bool)          { return f.ref.Outline(id) }
func (f *FontVec) GlyphCount() int                             { return f.ref.GlyphCount() }
func (f *FontVec) CodepointIds() iter.Seq2[GlyphId, rune]      { return f.ref.CodepointIds() }

func (f *FontVec) GlyphRasterImage(id GlyphId, pixelsPerEm uint16) (GlyphImage, bool) {
	return f.ref.GlyphRasterImage(id, pixelsPerEm)
}

func (f *FontVec) GlyphSvgImage(id GlyphId) (GlyphSvg, bool) {
	return f.ref.GlyphSvgImage(id)
}
