// builtin.go - Built-in proportional fonts rasterized from basicfont for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tileset

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/intuitionamiga/TidyText/tidytext"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	FONT_SHORT = "short"
	FONT_TALL  = "tall"

	// Face7x13 cell geometry.
	BASIC_CELL_W   = 8
	BASIC_CELL_H   = 13
	BASIC_BASELINE = 11

	// Source rows [TOP, BOTTOM) sampled into the 8 tile rows. The first and
	// last tile rows always land on TOP and BOTTOM-1.
	SHORT_TOP    = 2
	SHORT_BOTTOM = 10
	TALL_TOP     = 2
	TALL_BOTTOM  = 13

	INK_THRESHOLD = 0x80
)

// Names lists the built-in fonts accepted by ByName.
func Names() []string { return []string{FONT_SHORT, FONT_TALL} }

// ByName returns a built-in font.
func ByName(name string) (Tileset, error) {
	switch name {
	case FONT_SHORT, "":
		return Basic(), nil
	case FONT_TALL:
		return BasicTall(), nil
	}
	return nil, fmt.Errorf("tileset: unknown built-in font %q", name)
}

// Basic renders basicfont.Face7x13 into 8x8 tiles, cropping descenders.
func Basic() Tileset { return rasterize(SHORT_TOP, SHORT_BOTTOM) }

// BasicTall squeezes the full cell, descenders included, into 8 rows.
func BasicTall() Tileset { return rasterize(TALL_TOP, TALL_BOTTOM) }

// rasterize draws every printable character, left-justifies it so the
// width table can be measured from the bitmap, and adds a one pixel drop
// shadow in index 2.
func rasterize(top, bottom int) Tileset {
	cell := image.NewAlpha(image.Rect(0, 0, BASIC_CELL_W, BASIC_CELL_H))
	d := &font.Drawer{
		Dst:  cell,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
	}

	ts := make(Tileset, tidytext.LAST_PRINTABLE-tidytext.FONT_BASE_CODE+1)
	for code := tidytext.FIRST_PRINTABLE; code <= tidytext.LAST_PRINTABLE; code++ {
		draw.Draw(cell, cell.Bounds(), image.Transparent, image.Point{}, draw.Src)
		d.Dot = fixed.P(0, BASIC_BASELINE)
		d.DrawString(string(rune(code)))

		var ink [tidytext.TILE_HEIGHT][tidytext.TILE_WIDTH]bool
		left := tidytext.TILE_WIDTH
		for row := 0; row < tidytext.TILE_HEIGHT; row++ {
			src := top + row*(bottom-1-top)/(tidytext.TILE_HEIGHT-1)
			for col := 0; col < tidytext.TILE_WIDTH; col++ {
				if cell.AlphaAt(col, src).A >= INK_THRESHOLD {
					ink[row][col] = true
					left = min(left, col)
				}
			}
		}
		if left == tidytext.TILE_WIDTH {
			continue
		}

		t := &ts[tidytext.GlyphOffset(byte(code))]
		for row := 0; row < tidytext.TILE_HEIGHT; row++ {
			for col := left; col < tidytext.TILE_WIDTH; col++ {
				if !ink[row][col] {
					continue
				}
				x := col - left
				t.SetPixel(x, row, tidytext.SOURCE_INDEX_PRIMARY)
				if x+1 < tidytext.TILE_WIDTH && row+1 < tidytext.TILE_HEIGHT && t.PixelAt(x+1, row+1) == 0 &&
					(col+1 >= tidytext.TILE_WIDTH || !ink[row+1][col+1]) {
					t.SetPixel(x+1, row+1, tidytext.SOURCE_INDEX_SECONDARY)
				}
			}
		}
	}
	return ts
}
