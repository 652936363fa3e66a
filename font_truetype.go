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

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontTrueType is a Font backed by github.com/golang/freetype/truetype, an
// alternate decoding path kept alongside FontRef/FontVec (golang.org/x/image
// font/sfnt) for callers that already carry the freetype stack elsewhere in
// their program and don't want two TrueType parsers linked in. Unlike sfnt,
// truetype.GlyphBuf exposes raw on/off-curve glyf points rather than
// pre-decoded segments, so Outline reconstructs quadratic contours itself
// (§4.2's implied-on-curve-point rule).
type FontTrueType struct {
	tf   *truetype.Font
	upem float32

	buf     truetype.GlyphBuf
	builder outlineBuilder
}

// NewFontVecFromTrueType parses data with github.com/golang/freetype/truetype
// instead of golang.org/x/image/font/sfnt.
func NewFontVecFromTrueType(data []byte) (*FontTrueType, error) {
	tf, err := truetype.Parse(data)
	if err != nil {
		return nil, ErrInvalidFont
	}
	upem := tf.FUnitsPerEm()
	return &FontTrueType{tf: tf, upem: float32(upem)}, nil
}

func (f *FontTrueType) ppemUnits() fixed.Int26_6 {
	if f.upem <= 0 {
		return fixed.I(1)
	}
	return fixed.I(int(f.upem))
}

func (f *FontTrueType) UnitsPerEm() (float32, bool) {
	if f.upem <= 0 {
		return 0, false
	}
	return f.upem, true
}

func (f *FontTrueType) AscentUnscaled() float32 {
	m := f.tf.Bounds(f.ppemUnits())
	return float32(m.Max.Y) / 64
}

func (f *FontTrueType) DescentUnscaled() float32 {
	m := f.tf.Bounds(f.ppemUnits())
	return float32(m.Min.Y) / 64
}

func (f *FontTrueType) LineGapUnscaled() float32 {
	return 0
}

// ItalicAngle always returns 0: the font's post table angle is not read.
func (f *FontTrueType) ItalicAngle() float32 {
	return 0
}

func (f *FontTrueType) GlyphId(r rune) GlyphId {
	return GlyphId(f.tf.Index(r))
}

func (f *FontTrueType) HAdvanceUnscaled(id GlyphId) float32 {
	hm := f.tf.HMetric(f.ppemUnits(), truetype.Index(id))
	return float32(hm.AdvanceWidth) / 64
}

func (f *FontTrueType) HSideBearingUnscaled(id GlyphId) float32 {
	hm := f.tf.HMetric(f.ppemUnits(), truetype.Index(id))
	return float32(hm.LeftSideBearing) / 64
}

func (f *FontTrueType) VAdvanceUnscaled(id GlyphId) float32 {
	return f.AscentUnscaled() - f.DescentUnscaled()
}

func (f *FontTrueType) VSideBearingUnscaled(id GlyphId) float32 {
	return 0
}

func (f *FontTrueType) KernUnscaled(first, second GlyphId) float32 {
	k := f.tf.Kern(f.ppemUnits(), truetype.Index(first), truetype.Index(second))
	return float32(k) / 64
}

func (f *FontTrueType) GlyphCount() int {
	return f.tf.NumGlyphs()
}

// Outline loads id's raw glyf contours and reconstructs quadratic Bézier
// edges from the on/off-curve point flags: a straight run of on-curve
// points becomes lines, and two consecutive off-curve points get an implied
// on-curve point inserted at their midpoint (the standard TrueType
// contour-decoding rule).
func (f *FontTrueType) Outline(id GlyphId) (Outline, bool) {
	if err := f.buf.Load(f.tf, f.ppemUnits(), truetype.Index(id), font.HintingNone); err != nil {
		return Outline{}, false
	}
	if len(f.buf.Points) == 0 {
		return Outline{}, false
	}

	f.builder.reset()
	start := 0
	for _, end := range f.buf.Ends {
		decodeTrueTypeContour(&f.builder, f.buf.Points[start:end+1])
		start = end + 1
	}
	return f.builder.finish()
}

func decodeTrueTypeContour(b *outlineBuilder, pts []truetype.Point) {
	n := len(pts)
	if n == 0 {
		return
	}
	onCurve := func(i int) bool { return pts[(i%n+n)%n].Flags&0x01 != 0 }
	at := func(i int) Point {
		p := pts[(i%n+n)%n]
		return Point{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
	}

	startIdx := 0
	var startPt Point
	if onCurve(0) {
		startPt = at(0)
	} else if onCurve(n - 1) {
		startPt = at(n - 1)
		startIdx = -1
	} else {
		startPt = midPoint(at(0), at(n-1))
		startIdx = -1
	}

	b.moveTo(startPt)
	cur := startPt
	i := startIdx + 1
	for count := 0; count < n; count++ {
		if onCurve(i) {
			p := at(i)
			b.lineTo(p)
			cur = p
			i++
			continue
		}
		ctrl := at(i)
		var next Point
		if onCurve(i + 1) {
			next = at(i + 1)
			i += 2
			count++
		} else {
			next = midPoint(ctrl, at(i+1))
			i++
		}
		b.quadTo(ctrl, next)
		cur = next
	}
	_ = cur
	b.close()
}

func midPoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// CodepointIds is unimplemented for the truetype backend: the freetype
// package does not expose cmap subtable enumeration, only single-rune
// lookups via Index. Use GlyphId for targeted lookups instead.
func (f *FontTrueType) CodepointIds() iter.Seq2[GlyphId, rune] {
	return func(yield func(GlyphId, rune) bool) {}
}

// GlyphRasterImage always returns false: embedded bitmap tables are not read.
func (f *FontTrueType) GlyphRasterImage(id GlyphId, pixelsPerEm uint16) (GlyphImage, bool) {
	return GlyphImage{}, false
}

// GlyphSvgImage always returns false: the SVG table is not read.
func (f *FontTrueType) GlyphSvgImage(id GlyphId) (GlyphSvg, bool) {
	return GlyphSvg{}, false
}
