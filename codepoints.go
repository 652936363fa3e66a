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

// CodepointMapping is one (glyph, rune) pair from a font's cmap, as
// materialized by CollectCodepointIds.
type CodepointMapping struct {
	Id   GlyphId
	Rune rune
}

// CollectCodepointIds drains f.CodepointIds into a slice. Prefer ranging
// over CodepointIds directly when the caller can stop early — this is for
// callers that need the whole mapping at once (e.g. building a reverse
// lookup table) and are willing to pay for materializing it.
func CollectCodepointIds(f Font) []CodepointMapping {
	var out []CodepointMapping
	for id, r := range f.CodepointIds() {
		out = append(out, CodepointMapping{Id: id, Rune: r})
	}
	return out
}
