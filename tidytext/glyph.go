// glyph.go - Source font glyph lookup for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

// GlyphSource is the read-only font asset: a flat table of 8x8 4bpp glyph
// images, one per character code starting at FONT_BASE_CODE.
type GlyphSource interface {
	GlyphCount() int
	GlyphAt(index int) Tile
}

// GlyphOffset maps a character code to its position in the font asset.
// Codes outside FIRST_PRINTABLE..LAST_PRINTABLE map to glyph 0 (blank).
func GlyphOffset(code byte) int {
	if code >= FIRST_PRINTABLE && code <= LAST_PRINTABLE {
		return int(code) - FONT_BASE_CODE
	}
	return 0
}

// FetchGlyph copies the glyph image for code out of src. A nil source or an
// offset past the end of the asset yields a blank tile.
func FetchGlyph(src GlyphSource, code byte) Tile {
	if src == nil {
		return Tile{}
	}
	offset := GlyphOffset(code)
	if offset >= src.GlyphCount() {
		return Tile{}
	}
	return src.GlyphAt(offset)
}
