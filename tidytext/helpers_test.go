// helpers_test.go - Shared fakes for TidyText tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

import "fmt"

// testFont is a GlyphSource backed by a plain slice.
type testFont []Tile

func (f testFont) GlyphCount() int        { return len(f) }
func (f testFont) GlyphAt(index int) Tile { return f[index] }

// newTestFont returns a full printable-range font with every glyph blank.
func newTestFont() testFont {
	return make(testFont, LAST_PRINTABLE-FONT_BASE_CODE+1)
}

// with sets the glyph for code to a tile whose every row is row.
func (f testFont) with(code byte, row uint32) testFont {
	var t Tile
	for i := range t {
		t[i] = row
	}
	f[GlyphOffset(code)] = t
	return f
}

// solidFont returns a font where every printable glyph is all index 1.
func solidFont() testFont {
	f := newTestFont()
	for c := byte(FIRST_PRINTABLE); c <= LAST_PRINTABLE; c++ {
		f.with(c, 0x11111111)
	}
	return f
}

type cellKey struct {
	plane Plane
	x, y  int
}

// recordingDevice is an in-memory Device that keeps every upload and cell.
type recordingDevice struct {
	vram    map[uint16]Tile
	cells   map[cellKey]TileAttr
	log     []string
	loads   int
	waits   int
	pending int
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		vram:  make(map[uint16]Tile),
		cells: make(map[cellKey]TileAttr),
	}
}

func (d *recordingDevice) LoadTiles(tiles []Tile, startIndex uint16) {
	for i, t := range tiles {
		d.vram[startIndex+uint16(i)] = t
	}
	d.loads++
	d.pending++
	d.log = append(d.log, fmt.Sprintf("load %d", startIndex))
}

func (d *recordingDevice) SetTileMapXY(plane Plane, attr TileAttr, x, y int) {
	d.cells[cellKey{plane, x, y}] = attr
	d.log = append(d.log, fmt.Sprintf("cell %d,%d=%d", x, y, attr.TileIndex()))
}

func (d *recordingDevice) WaitDMACompletion() {
	d.waits++
	d.pending = 0
}

func (d *recordingDevice) tileAt(plane Plane, x, y int) (Tile, bool) {
	attr, ok := d.cells[cellKey{plane, x, y}]
	if !ok {
		return Tile{}, false
	}
	return d.vram[attr.TileIndex()], true
}

// widthsOf builds a table with only the given entries.
func widthsOf(entries map[byte]int) *WidthTable {
	var wt WidthTable
	for code, w := range entries {
		wt.SetWidth(code, w)
	}
	return &wt
}

func rowString(t Tile, row int) string {
	s := make([]byte, 0, TILE_WIDTH)
	for col := 0; col < TILE_WIDTH; col++ {
		s = append(s, "0123456789ABCDEF"[t.PixelAt(col, row)])
	}
	return string(s)
}
