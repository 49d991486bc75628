// vdp_constants.go - Tile plane VDP geometry and colour constants for TidyText


/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText
License: GPLv3 or later
*/

/*
vdp_constants.go - Tile Plane VDP Constants

The host display is a tile/plane video processor in the mould of the
Mega Drive VDP running in H40 mode.

Memory Layout:
- VRAM:  2048 tiles of 8x8 4bpp pixels (32 bytes each, 64KB)
- Planes: A, B and WINDOW, 64x32 cells of 16-bit attribute words
- CRAM:  64 colours (4 palette registers x 16 slots), 0000BBB0GGG0RRR0

Tile Map (VRAM tile index space):
  0x000-0x0FF  reserved for game graphics (below the font low boundary)
  0x100-0x5FF  proportional text, allocated downward from 0x600
  0x7A0-0x7FF  fixed-width system font (96 glyphs from space)
*/

package main

import "github.com/intuitionamiga/TidyText/tidytext"

// =============================================================================
// Geometry
// =============================================================================

const (
	VDP_VRAM_TILES = 2048

	VDP_PLANE_WIDTH  = 64 // Cells per plane row
	VDP_PLANE_HEIGHT = 32 // Cell rows per plane
	VDP_PLANE_COUNT  = 3

	VDP_SCREEN_CELLS_X = 40
	VDP_SCREEN_CELLS_Y = 28
	VDP_SCREEN_WIDTH   = VDP_SCREEN_CELLS_X * tidytext.TILE_WIDTH  // 320
	VDP_SCREEN_HEIGHT  = VDP_SCREEN_CELLS_Y * tidytext.TILE_HEIGHT // 224

	VDP_BYTES_PER_PIXEL = 4
	VDP_LAYER           = 10
)

// =============================================================================
// System Font
// =============================================================================

const (
	FONT_LEN        = 96
	TILE_FONT_INDEX = VDP_VRAM_TILES - FONT_LEN // 1952
)

// =============================================================================
// Colour RAM
// =============================================================================

const (
	VDP_CRAM_SIZE      = 64
	VDP_PALETTE_SIZE   = 16
	VDP_PALETTE_COUNT  = VDP_CRAM_SIZE / VDP_PALETTE_SIZE
	VDP_COLOR_MASK     = 0x0EEE
	VDP_COLOR_R_SHIFT  = 1
	VDP_COLOR_G_SHIFT  = 5
	VDP_COLOR_B_SHIFT  = 9
	VDP_COLOR_CHANNEL  = 0x7
	VDP_COLOR_MAX_STEP = 7
)

// Palette registers
const (
	PAL0 = iota
	PAL1
	PAL2
	PAL3
)

// DMA queue depth before an implicit flush
const VDP_DMA_QUEUE_LEN = 256
