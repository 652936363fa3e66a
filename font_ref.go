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
	"iter"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// fontHintingNone is the Hinting value passed to every sfnt query: outlines
// and metrics are always extracted unscaled (at units-per-em, via
// ppemUnits), where hinting has no effect.
const fontHintingNone = font.HintingNone

// FontRef is a Font backed by golang.org/x/image/font/sfnt, parsed from a
// byte slice the caller continues to own (e.g. a memory-mapped file or a
// slice into a larger asset bundle). Use FontVec instead when the bytes
// should be owned and kept alive by the Font value itself.
type FontRef struct {
	data []byte
	sf   *sfnt.Font
	upem float32

	buf     sfnt.Buffer
	builder outlineBuilder
}

// ParseFontRef parses font (OpenType/TrueType) data into a FontRef. data
// must outlive the returned FontRef; sfnt reads from it lazily on demand.
func ParseFontRef(data []byte) (*FontRef, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, ErrInvalidFont
	}
	f := &FontRef{data: data, sf: sf}
	if upem, err := sf.UnitsPerEm(); err == nil {
		f.upem = float32(upem)
	}
	return f, nil
}

func (f *FontRef) UnitsPerEm() (float32, bool) {
	if f.upem <= 0 {
		return 0, false
	}
	return f.upem, true
}

func (f *FontRef) ppemUnits() fixed.Int26_6 {
	if f.upem <= 0 {
		return fixed.I(1)
	}
	return fixed.I(int(f.upem))
}

func (f *FontRef) AscentUnscaled() float32 {
	m, err := f.sf.Metrics(&f.buf, f.ppemUnits(), fontHintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Ascent)
}

func (f *FontRef) DescentUnscaled() float32 {
	m, err := f.sf.Metrics(&f.buf, f.ppemUnits(), fontHintingNone)
	if err != nil {
		return 0
	}
	// sfnt reports Descent as a positive distance below the baseline; this
	// package's convention (matching GlyphBounds' pos.Y − desc) wants it
	// negative, mirroring Ascent's sign.
	return -fixedToFloat(m.Descent)
}

func (f *FontRef) LineGapUnscaled() float32 {
	m, err := f.sf.Metrics(&f.buf, f.ppemUnits(), fontHintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(m.Height) - fixedToFloat(m.Ascent) - fixedToFloat(m.Descent)
}

// ItalicAngle always returns 0: the font's post table angle is not read.
func (f *FontRef) ItalicAngle() float32 {
	return 0
}

func (f *FontRef) GlyphId(r rune) GlyphId {
	id, err := f.sf.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphId(id)
}

func (f *FontRef) HAdvanceUnscaled(id GlyphId) float32 {
	adv, err := f.sf.GlyphAdvance(&f.buf, sfnt.GlyphIndex(id), f.ppemUnits(), fontHintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

func (f *FontRef) HSideBearingUnscaled(id GlyphId) float32 {
	bounds, ok, err := f.sf.GlyphBounds(&f.buf, sfnt.GlyphIndex(id), f.ppemUnits(), fontHintingNone)
	if err != nil || !ok {
		return 0
	}
	return fixedToFloat(bounds.Min.X)
}

func (f *FontRef) VAdvanceUnscaled(id GlyphId) float32 {
	return f.AscentUnscaled() - f.DescentUnscaled() + f.LineGapUnscaled()
}

func (f *FontRef) VSideBearingUnscaled(id GlyphId) float32 {
	return 0
}

func (f *FontRef) KernUnscaled(first, second GlyphId) float32 {
	k, err := f.sf.Kern(&f.buf, sfnt.GlyphIndex(first), sfnt.GlyphIndex(second), f.ppemUnits(), fontHintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

func (f *FontRef) Outline(id GlyphId) (Outline, bool) {
	segs, err := f.sf.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), f.ppemUnits(), nil)
	if err != nil {
		return Outline{}, false
	}
	f.builder.reset()
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			f.builder.moveTo(fixedPtToPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			f.builder.lineTo(fixedPtToPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			f.builder.quadTo(fixedPtToPoint(seg.Args[0]), fixedPtToPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			f.builder.curveTo(fixedPtToPoint(seg.Args[0]), fixedPtToPoint(seg.Args[1]), fixedPtToPoint(seg.Args[2]))
		}
	}
	return f.builder.finish()
}

func (f *FontRef) GlyphCount() int {
	return f.sf.NumGlyphs()
}

// CodepointIds yields each glyph this font's cmap maps a rune to, once,
// paired with the lowest such rune. sfnt doesn't expose a direct cmap
// enumerator, so this walks U+0020 through U+10FFFF (skipping surrogates)
// probing GlyphIndex per rune; runes below U+0020 are not visited. Callers
// that only need a handful of lookups should
// use GlyphId directly instead of exhausting this iterator.
func (f *FontRef) CodepointIds() iter.Seq2[GlyphId, rune] {
	return func(yield func(GlyphId, rune) bool) {
		seen := make(map[GlyphId]bool)
		for r := rune(0x20); r <= 0x10FFFF; r++ {
			if r >= 0xD800 && r <= 0xDFFF {
				continue
			}
			id := f.GlyphId(r)
			if id == 0 || seen[id] {
				continue
			}
			seen[id] = true
			if !yield(id, r) {
				return
			}
		}
	}
}

// GlyphRasterImage always returns false: embedded bitmap tables are not read.
func (f *FontRef) GlyphRasterImage(id GlyphId, pixelsPerEm uint16) (GlyphImage, bool) {
	return GlyphImage{}, false
}

// GlyphSvgImage always returns false: the SVG table is not read.
func (f *FontRef) GlyphSvgImage(id GlyphId) (GlyphSvg, bool) {
	return GlyphSvg{}, false
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

func fixedPtToPoint(p fixed.Point26_6) Point {
	return Point{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}
