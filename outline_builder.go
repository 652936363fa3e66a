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

// outlineBuilder is a stateful sink that accumulates the curve list of one
// glyph contour at a time. It implements the same move/line/quad/curve
// protocol that golang.org/x/image/font/sfnt's Segment stream already
// speaks, so FontRef and FontVec just replay the parser's segments through
// it; FontTrueType feeds it the contours it decodes from truetype's raw
// on/off-curve points.
type outlineBuilder struct {
	last     Point
	lastMove Point
	hasMove  bool
	out      []OutlineCurve
}

// moveTo starts a new contour at p. If the previous contour was left open
// (no explicit close), it is sealed first so every contour in out is closed.
func (b *outlineBuilder) moveTo(p Point) {
	b.closeIfOpen()
	b.last = p
	b.lastMove = p
	b.hasMove = true
}

// lineTo appends a straight edge from the current point to p.
func (b *outlineBuilder) lineTo(p Point) {
	b.out = append(b.out, Line(b.last, p))
	b.last = p
}

// quadTo appends a quadratic Bézier edge from the current point via c to p.
func (b *outlineBuilder) quadTo(c, p Point) {
	b.out = append(b.out, Quad(b.last, c, p))
	b.last = p
}

// curveTo appends a cubic Bézier edge from the current point via c0, c1 to p.
func (b *outlineBuilder) curveTo(c0, c1, p Point) {
	b.out = append(b.out, Cubic(b.last, c0, c1, p))
	b.last = p
}

// close seals the current contour with a line back to its start point, if
// one isn't already there, and forgets the start point so a later close (or
// the implicit one in finish) doesn't double it up.
func (b *outlineBuilder) close() {
	if !b.hasMove {
		return
	}
	if b.last != b.lastMove {
		b.out = append(b.out, Line(b.last, b.lastMove))
	}
	b.last = b.lastMove
	b.hasMove = false
}

// closeIfOpen is what moveTo and finish call to seal a contour the source
// font's parser never closed itself; it performs the same step as close().
func (b *outlineBuilder) closeIfOpen() {
	b.close()
}

// finish seals any still-open contour (some fonts rely on the rasterizer's
// implicit close rather than emitting one) and returns the accumulated
// curve list (a copy the builder no longer touches) together with the
// bounding box of its end and control points. ok is false for an empty
// or degenerate outline — the caller (FontRef/FontVec.Outline) reports that
// as "no outline" rather than returning a zero-area Outline.
func (b *outlineBuilder) finish() (Outline, bool) {
	b.closeIfOpen()
	bounds, ok := outlineBounds(b.out)
	if !ok || !bounds.valid() {
		return Outline{}, false
	}
	return Outline{Bounds: bounds, Curves: append([]OutlineCurve(nil), b.out...)}, true
}

// reset clears the builder for reuse across glyphs, keeping the backing
// array of out as scratch space so it does not regrow for every glyph.
func (b *outlineBuilder) reset() {
	b.out = b.out[:0]
	b.hasMove = false
	b.last = Point{}
	b.lastMove = Point{}
}
