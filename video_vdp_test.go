// video_vdp_test.go - Tile plane VDP test suite for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package main

import (
	"testing"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

const (
	testRed   = 0x000E
	testGreen = 0x00E0
	testBlue  = 0x0E00
)

func TestVDP_ImplementsDevice(t *testing.T) {
	var _ tidytext.Device = (*TilePlaneVDP)(nil) // Compile-time check
	var _ VideoSource = (*TilePlaneVDP)(nil)
}

func dotTile(col, row int, idx uint8) tidytext.Tile {
	var tile tidytext.Tile
	tile.SetPixel(col, row, idx)
	return tile
}

// framePixel returns the RGB at (x, y) of a rendered frame.
func framePixel(frame []byte, x, y int) [3]byte {
	i := (y*VDP_SCREEN_WIDTH + x) * VDP_BYTES_PER_PIXEL
	return [3]byte{frame[i], frame[i+1], frame[i+2]}
}

var (
	rgbBlack = [3]byte{0, 0, 0}
	rgbRed   = [3]byte{255, 0, 0}
	rgbGreen = [3]byte{0, 255, 0}
	rgbBlue  = [3]byte{0, 0, 255}
)

// =============================================================================
// Phase 1: DMA and VRAM
// =============================================================================

func TestVDP_LoadTilesIsQueuedUntilBarrier(t *testing.T) {
	v := NewTilePlaneVDP()
	v.LoadTiles([]tidytext.Tile{dotTile(0, 0, 1)}, 5)

	if v.PendingDMA() != 1 {
		t.Fatalf("PendingDMA = %d, want 1", v.PendingDMA())
	}
	if !v.TileAt(5).IsBlank() {
		t.Fatal("tile committed before WaitDMACompletion")
	}
	v.WaitDMACompletion()
	if v.PendingDMA() != 0 {
		t.Fatalf("PendingDMA after barrier = %d", v.PendingDMA())
	}
	if v.TileAt(5).PixelAt(0, 0) != 1 {
		t.Fatal("tile not committed by WaitDMACompletion")
	}
}

func TestVDP_LoadTilesCopiesSource(t *testing.T) {
	v := NewTilePlaneVDP()
	buf := []tidytext.Tile{dotTile(0, 0, 3)}
	v.LoadTiles(buf, 10)
	buf[0] = tidytext.Tile{}
	v.WaitDMACompletion()

	if v.TileAt(10).PixelAt(0, 0) != 3 {
		t.Fatal("upload changed when the caller reused its buffer")
	}
}

func TestVDP_DropsTilesOutsideVRAM(t *testing.T) {
	v := NewTilePlaneVDP()
	tiles := []tidytext.Tile{dotTile(0, 0, 1), dotTile(0, 0, 2)}
	v.LoadTiles(tiles, VDP_VRAM_TILES-1)
	v.WaitDMACompletion()

	committed, dropped := v.DMAStats()
	if committed != 1 || dropped != 1 {
		t.Fatalf("DMAStats = %d committed, %d dropped; want 1, 1", committed, dropped)
	}
	if v.TileAt(VDP_VRAM_TILES-1).PixelAt(0, 0) != 1 {
		t.Fatal("in-range tile not committed")
	}
}

func TestVDP_ResetRestoresPowerOnState(t *testing.T) {
	v := NewTilePlaneVDP()
	v.LoadTiles([]tidytext.Tile{dotTile(1, 1, 1)}, 100)
	v.WaitDMACompletion()
	v.SetTileMapXY(tidytext.PLANE_B, 100, 0, 0)
	v.SetColors(0, []uint16{testRed})
	v.LoadTiles([]tidytext.Tile{dotTile(1, 1, 1)}, 101)

	v.Reset()
	if !v.TileAt(100).IsBlank() || v.CellAt(tidytext.PLANE_B, 0, 0) != 0 || v.Color(0) != 0 || v.PendingDMA() != 0 {
		t.Fatal("Reset left state behind")
	}
	if v.TileAt(TILE_FONT_INDEX+int('A'-' ')) != tileset.Basic().Glyph('A') {
		t.Fatal("Reset did not reload the system font")
	}
}

// =============================================================================
// Phase 2: Planes and CRAM
// =============================================================================

func TestVDP_SetTileMapXYIgnoresOutOfRange(t *testing.T) {
	v := NewTilePlaneVDP()
	v.SetTileMapXY(tidytext.PLANE_A, 7, VDP_PLANE_WIDTH, 0)
	v.SetTileMapXY(tidytext.PLANE_A, 7, -1, 0)
	v.SetTileMapXY(tidytext.PLANE_A, 7, 0, VDP_PLANE_HEIGHT)
	v.SetTileMapXY(tidytext.Plane(VDP_PLANE_COUNT), 7, 0, 0)
	v.SetTileMapXY(tidytext.PLANE_WINDOW, 7, VDP_PLANE_WIDTH-1, VDP_PLANE_HEIGHT-1)

	if got := v.CellAt(tidytext.PLANE_WINDOW, VDP_PLANE_WIDTH-1, VDP_PLANE_HEIGHT-1); got != 7 {
		t.Fatalf("last cell = %d, want 7", got)
	}
	for x := 0; x < VDP_PLANE_WIDTH; x++ {
		if v.CellAt(tidytext.PLANE_A, x, 0) != 0 {
			t.Fatalf("out-of-range write landed at (%d,0)", x)
		}
	}
}

func TestVDP_SetColorsMasksAndClips(t *testing.T) {
	v := NewTilePlaneVDP()
	v.SetColors(VDP_CRAM_SIZE-1, []uint16{0xFFFF, 0x0EEE})
	if got := v.Color(VDP_CRAM_SIZE - 1); got != VDP_COLOR_MASK {
		t.Fatalf("CRAM[63] = %04X, want %04X", got, VDP_COLOR_MASK)
	}
}

func TestVDP_ColorExpansion(t *testing.T) {
	cases := []struct {
		word    uint16
		r, g, b uint8
	}{
		{0x0000, 0, 0, 0},
		{testRed, 255, 0, 0},
		{testGreen, 0, 255, 0},
		{testBlue, 0, 0, 255},
		{0x0888, 145, 145, 145},
	}
	for _, tc := range cases {
		r, g, b := mdColorToRGB(tc.word)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("mdColorToRGB(%04X) = %d,%d,%d want %d,%d,%d", tc.word, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func TestVDP_DrawTextBGUsesSystemFont(t *testing.T) {
	v := NewTilePlaneVDP()
	v.DrawTextBG(tidytext.PLANE_A, "A\xe9", 2, 3)

	attr := v.CellAt(tidytext.PLANE_A, 2, 3)
	if attr.TileIndex() != TILE_FONT_INDEX+uint16('A'-' ') || attr.Palette() != PAL0 {
		t.Fatalf("cell (2,3) = %04X", uint16(attr))
	}
	if next := v.CellAt(tidytext.PLANE_A, 3, 3); next.TileIndex() != TILE_FONT_INDEX {
		t.Fatalf("character outside the font should draw a space, got tile %d", next.TileIndex())
	}

	v.DrawTextBG(tidytext.PLANE_B, "clipped", VDP_PLANE_WIDTH-2, 0)
	if v.CellAt(tidytext.PLANE_B, VDP_PLANE_WIDTH-1, 0).TileIndex() != TILE_FONT_INDEX+uint16('l'-' ') {
		t.Fatal("text should run up to the plane edge")
	}
}

// =============================================================================
// Phase 3: Rendering
// =============================================================================

func newRenderTestVDP() *TilePlaneVDP {
	v := NewTilePlaneVDP()
	v.SetColors(0, []uint16{0, testRed, testGreen, testBlue})
	v.LoadTiles([]tidytext.Tile{dotTile(0, 0, 1), dotTile(0, 0, 2), dotTile(1, 0, 3)}, 1)
	return v
}

func TestVDP_RenderFrameCommitsPendingDMA(t *testing.T) {
	v := newRenderTestVDP()
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, false, false, false, 1), 0, 0)

	frame := v.RenderFrame()
	if len(frame) != VDP_SCREEN_WIDTH*VDP_SCREEN_HEIGHT*VDP_BYTES_PER_PIXEL {
		t.Fatalf("frame size = %d", len(frame))
	}
	if got := framePixel(frame, 0, 0); got != rgbRed {
		t.Fatalf("pixel (0,0) = %v, want red", got)
	}
	if got := framePixel(frame, 1, 0); got != rgbBlack {
		t.Fatalf("pixel (1,0) = %v, want backdrop", got)
	}
	if v.PendingDMA() != 0 {
		t.Fatal("RenderFrame should drain the DMA queue")
	}
}

func TestVDP_TransparentIndexShowsLowerPlane(t *testing.T) {
	v := newRenderTestVDP()
	v.SetTileMapXY(tidytext.PLANE_B, tidytext.MakeTileAttr(PAL0, false, false, false, 1), 0, 0)
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, false, false, false, 3), 0, 0)

	frame := v.RenderFrame()
	if got := framePixel(frame, 0, 0); got != rgbRed {
		t.Fatalf("pixel (0,0) = %v, want plane B red through transparent A", got)
	}
	if got := framePixel(frame, 1, 0); got != rgbBlue {
		t.Fatalf("pixel (1,0) = %v, want plane A blue", got)
	}
}

func TestVDP_PriorityOrdering(t *testing.T) {
	v := newRenderTestVDP()
	v.SetTileMapXY(tidytext.PLANE_B, tidytext.MakeTileAttr(PAL0, true, false, false, 2), 0, 0)
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, false, false, false, 1), 0, 0)

	if got := framePixel(v.RenderFrame(), 0, 0); got != rgbGreen {
		t.Fatalf("high priority B under low priority A: got %v, want green", got)
	}

	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, true, false, false, 1), 0, 0)
	if got := framePixel(v.RenderFrame(), 0, 0); got != rgbRed {
		t.Fatalf("equal priority: got %v, want plane A red on top", got)
	}

	v.SetTileMapXY(tidytext.PLANE_WINDOW, tidytext.MakeTileAttr(PAL0, true, false, false, 2), 0, 0)
	if got := framePixel(v.RenderFrame(), 0, 0); got != rgbGreen {
		t.Fatalf("window plane: got %v, want green on top", got)
	}
}

func TestVDP_FlipFlags(t *testing.T) {
	v := newRenderTestVDP()
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, false, false, true, 1), 0, 0)
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL0, false, true, false, 1), 1, 0)

	frame := v.RenderFrame()
	if got := framePixel(frame, 7, 0); got != rgbRed {
		t.Fatalf("hflip: pixel (7,0) = %v, want red", got)
	}
	if got := framePixel(frame, 0, 0); got != rgbBlack {
		t.Fatalf("hflip: pixel (0,0) = %v, want backdrop", got)
	}
	if got := framePixel(frame, 8, 7); got != rgbRed {
		t.Fatalf("vflip: pixel (8,7) = %v, want red", got)
	}
}

func TestVDP_PaletteRegisterSelectsCRAMBank(t *testing.T) {
	v := newRenderTestVDP()
	v.SetColors(PAL2*VDP_PALETTE_SIZE, []uint16{0, testBlue})
	v.SetTileMapXY(tidytext.PLANE_A, tidytext.MakeTileAttr(PAL2, false, false, false, 1), 0, 0)

	if got := framePixel(v.RenderFrame(), 0, 0); got != rgbBlue {
		t.Fatalf("PAL2 slot 1: got %v, want blue", got)
	}
}

func TestVDP_GetFrameHonoursEnable(t *testing.T) {
	v := NewTilePlaneVDP()
	if v.GetFrame() == nil {
		t.Fatal("enabled VDP returned no frame")
	}
	v.SetEnabled(false)
	if v.GetFrame() != nil {
		t.Fatal("disabled VDP returned a frame")
	}
}

// =============================================================================
// Phase 4: Renderer Integration
// =============================================================================

func TestVDP_ProportionalTextThroughRenderer(t *testing.T) {
	v := NewTilePlaneVDP()
	v.SetColors(PAL1*VDP_PALETTE_SIZE+9, []uint16{testGreen})
	r := tidytext.New(v, tileset.Basic(), tidytext.DefaultConfig())

	n := r.DrawString(0, 5, tidytext.PLANE_A, PAL1, 9, 9, "Hi")
	if n == 0 {
		t.Fatal("nothing drawn")
	}
	attr := v.CellAt(tidytext.PLANE_A, 0, 5)
	if attr.TileIndex() != tidytext.DEFAULT_HIGH_BOUNDARY-1 || attr.Palette() != PAL1 {
		t.Fatalf("cell (0,5) = %04X", uint16(attr))
	}

	frame := v.RenderFrame()
	green := 0
	for y := 5 * 8; y < 6*8; y++ {
		for x := 0; x < n*8; x++ {
			if framePixel(frame, x, y) == rgbGreen {
				green++
			}
		}
	}
	if green == 0 {
		t.Fatal("no PAL1 slot 9 pixels in the rendered line")
	}
}
