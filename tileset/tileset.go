// tileset.go - 8x8 4bpp font tileset container and raw codec for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
tileset.go - Font Tilesets

A Tileset is the font asset the compositor reads: glyph 0 is the space
character, glyph n is character code 32+n. Glyph pixel indices follow the
font convention: 0 background, 1 primary ink, 2 secondary ink.

Raw Layout (.bin):
  32 bytes per tile, 4 bytes per row, rows top to bottom.
  Each byte holds two pixels, high nibble = left pixel.
  Rows are stored big-endian so byte 0 bits 7-4 are pixel 0.
*/

package tileset

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/intuitionamiga/TidyText/tidytext"
)

var (
	ErrUnsupportedFormat = errors.New("tileset: unsupported format")
	ErrBadSheetSize      = errors.New("tileset: sheet size is not a multiple of 8x8")
)

// Tileset is an ordered table of glyph images.
type Tileset []tidytext.Tile

func (ts Tileset) GlyphCount() int { return len(ts) }

func (ts Tileset) GlyphAt(index int) tidytext.Tile {
	if index < 0 || index >= len(ts) {
		return tidytext.Tile{}
	}
	return ts[index]
}

// Glyph returns the glyph drawn for code, blank if there is none.
func (ts Tileset) Glyph(code byte) tidytext.Tile {
	return tidytext.FetchGlyph(ts, code)
}

// Decode reads a raw tileset. A trailing partial tile is an error.
func Decode(r io.Reader) (Tileset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tileset: read: %w", err)
	}
	if len(data)%tidytext.TILE_BYTES != 0 {
		return nil, fmt.Errorf("tileset: %d bytes is not a whole number of %d-byte tiles", len(data), tidytext.TILE_BYTES)
	}
	ts := make(Tileset, len(data)/tidytext.TILE_BYTES)
	for i := range ts {
		tile := data[i*tidytext.TILE_BYTES:]
		for row := 0; row < tidytext.TILE_HEIGHT; row++ {
			ts[i][row] = binary.BigEndian.Uint32(tile[row*4:])
		}
	}
	return ts, nil
}

// Encode writes ts in the raw layout.
func Encode(w io.Writer, ts Tileset) error {
	buf := make([]byte, tidytext.TILE_BYTES)
	for _, tile := range ts {
		for row := 0; row < tidytext.TILE_HEIGHT; row++ {
			binary.BigEndian.PutUint32(buf[row*4:], tile[row])
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("tileset: write: %w", err)
		}
	}
	return nil
}

// MeasureWidths derives a width table from the glyph bitmaps: each printable
// character is as wide as its rightmost non-zero column. Blank glyphs (and
// everything outside the printable range) keep the entry from base.
func MeasureWidths(ts Tileset, base tidytext.WidthTable) tidytext.WidthTable {
	wt := base
	for code := byte(tidytext.FIRST_PRINTABLE); code <= tidytext.LAST_PRINTABLE; code++ {
		glyph := ts.Glyph(code)
		if w := inkWidth(&glyph); w > 0 {
			wt.SetWidth(code, w)
		}
	}
	return wt
}

// inkWidth returns one past the rightmost column holding a non-zero lane.
func inkWidth(t *tidytext.Tile) int {
	var any uint32
	for _, row := range t {
		any |= row
	}
	for col := tidytext.TILE_WIDTH - 1; col >= 0; col-- {
		if (any>>uint(28-col*4))&tidytext.PIXEL_MASK != 0 {
			return col + 1
		}
	}
	return 0
}
