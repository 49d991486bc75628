// text_host_test.go - Tests for the text host and clipboard paste

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package main

import (
	"strings"
	"testing"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

func newTestTextHost() (*TextHost, *TilePlaneVDP) {
	vdp := NewTilePlaneVDP()
	return NewTextHost(vdp, tileset.Basic(), tidytext.DefaultConfig()), vdp
}

func TestFirstPasteLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "hello"},
		{"a\r\nb", "a"},
		{"\r\rb\rc", "b"},
		{"\n  \n\tx\ty", " x y"},
		{"\n\n", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := firstPasteLine(tc.in); got != tc.want {
			t.Errorf("firstPasteLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFirstPasteLine_Cap(t *testing.T) {
	long := strings.Repeat("x", PASTE_MAX_BYTES+100)
	if got := firstPasteLine(long); len(got) != PASTE_MAX_BYTES {
		t.Fatalf("len = %d, want %d", len(got), PASTE_MAX_BYTES)
	}
}

func TestTextHost_PasteCyclesRows(t *testing.T) {
	host, vdp := newTestTextHost()

	for i := 0; i <= PASTE_ROW_LAST-PASTE_ROW_FIRST; i++ {
		if row := host.Paste("line"); row != PASTE_ROW_FIRST+i {
			t.Fatalf("paste %d landed on row %d", i, row)
		}
	}
	if row := host.Paste("wrap"); row != PASTE_ROW_FIRST {
		t.Fatalf("paste after the last row landed on %d, want %d", row, PASTE_ROW_FIRST)
	}

	attr := vdp.CellAt(tidytext.PLANE_A, 0, PASTE_ROW_FIRST)
	if attr.Palette() != PASTE_PALETTE || attr.TileIndex() == 0 {
		t.Fatalf("paste cell = %04X", uint16(attr))
	}
}

func TestTextHost_PasteClearsRow(t *testing.T) {
	host, vdp := newTestTextHost()
	vdp.SetTileMapXY(tidytext.PLANE_A, 42, VDP_PLANE_WIDTH-1, PASTE_ROW_FIRST)

	host.Paste("hi")
	if got := vdp.CellAt(tidytext.PLANE_A, VDP_PLANE_WIDTH-1, PASTE_ROW_FIRST); got != 0 {
		t.Fatalf("stale cell left on paste row: %04X", uint16(got))
	}
}

func TestTextHost_PasteNothing(t *testing.T) {
	host, _ := newTestTextHost()
	before := runtimeStatus.snapshot().pastedLines
	if row := host.Paste("\r\n \n"); row != -1 {
		t.Fatalf("blank paste returned row %d", row)
	}
	if runtimeStatus.snapshot().pastedLines != before {
		t.Fatal("blank paste was counted")
	}
}

func TestTextHost_ResetRewindsPasteRow(t *testing.T) {
	host, _ := newTestTextHost()
	host.Paste("one")
	host.Paste("two")
	host.Reset()
	if row := host.Paste("three"); row != PASTE_ROW_FIRST {
		t.Fatalf("paste after reset landed on %d", row)
	}
}

func TestTextHost_PublishesStats(t *testing.T) {
	host, vdp := newTestTextHost()
	host.Reset()
	n := host.DrawString(0, 0, tidytext.PLANE_B, PAL1, 1, 2, "Hello")
	vdp.WaitDMACompletion()

	snap := runtimeStatus.snapshot()
	if !snap.text.Ready || snap.text.TilesAllocated != n {
		t.Fatalf("status = %+v, want %d tiles allocated", snap.text, n)
	}
	if st := host.Stats(); st.LinesDrawn != 1 {
		t.Fatalf("LinesDrawn = %d, want 1", st.LinesDrawn)
	}
}

func TestTextHost_SingleAndMulti(t *testing.T) {
	host, vdp := newTestTextHost()
	host.Reset()

	if n := host.Single(0, 0, tidytext.PLANE_A, PAL0, 1, 2, "%d lives", 3); n == 0 {
		t.Fatal("Single drew nothing")
	}
	n := host.Multi(0, 1, tidytext.PLANE_A, PAL0, 1, 2, []string{"a", "", "b"})
	if n < 2 {
		t.Fatalf("Multi = %d tiles, want at least one per non-empty line", n)
	}
	if vdp.CellAt(tidytext.PLANE_A, 0, 2) != 0 {
		t.Fatal("empty line bound a cell")
	}
	if vdp.CellAt(tidytext.PLANE_A, 0, 3).TileIndex() == 0 {
		t.Fatal("third line not drawn on its own row")
	}
}

func TestRuntimeStatusLines(t *testing.T) {
	snap := runtimeStatusSnapshot{
		text:         tidytext.Stats{Ready: true, TilesAllocated: 12, TilesRemaining: 1268, CacheEntries: 3, LinesDrawn: 2},
		dmaCommitted: 12,
		pastedLines:  1,
	}
	if got, want := snap.tileLine(), "12 used  1268 free  3 cached  ready"; got != want {
		t.Fatalf("tileLine = %q, want %q", got, want)
	}
	if got, want := snap.lineLine(), "2 drawn  0 truncated  1 pasted  dma 12/0"; got != want {
		t.Fatalf("lineLine = %q, want %q", got, want)
	}
	snap.text.Exhausted = true
	if !strings.HasSuffix(snap.tileLine(), "over budget") {
		t.Fatalf("tileLine = %q", snap.tileLine())
	}
}

func TestTextHost_PasteReclaimsRowTiles(t *testing.T) {
	host, vdp := newTestTextHost()
	host.Reset()
	var font [FONT_LEN]tidytext.Tile
	for i := range font {
		font[i] = vdp.TileAt(TILE_FONT_INDEX + i)
	}

	line := strings.Repeat("Hello world ", 10)
	for i := 0; i < 60; i++ {
		host.Paste(line)
	}
	vdp.WaitDMACompletion()

	if !vdp.TileAt(0).IsBlank() {
		t.Fatal("tile 0 overwritten by pasted text")
	}
	for i := range font {
		if vdp.TileAt(TILE_FONT_INDEX+i) != font[i] {
			t.Fatalf("system font tile %d overwritten by pasted text", i)
		}
	}
	if st := host.Stats(); st.TilesAllocated != 0 || st.Exhausted {
		t.Fatalf("pastes charged to the main text region: %+v", st)
	}
	for row := PASTE_ROW_FIRST; row <= PASTE_ROW_LAST; row++ {
		for x := 0; x < VDP_PLANE_WIDTH; x++ {
			idx := int(vdp.CellAt(tidytext.PLANE_A, x, row).TileIndex())
			if idx != 0 && (idx < PASTE_TILE_BASE || idx >= TILE_FONT_INDEX) {
				t.Fatalf("paste cell (%d,%d) bound to slot %d outside the paste tiles", x, row, idx)
			}
		}
	}
}
