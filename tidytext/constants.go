// constants.go - Tile geometry, palette and budget constants for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
constants.go - Proportional Text Compositor Constants

Pixel Layout (one 32-bit word per tile row, 4 bits per pixel lane):

	bit 31..28  pixel 0 (leftmost)
	bit 27..24  pixel 1
	...
	bit  3..0   pixel 7 (rightmost)

Palette Remap (source glyph index -> hardware palette slot):
  0 -> 0 (transparent)
  1 -> primary slot
  2 -> secondary slot
  anything else -> 0

Tile Attribute Word (plane cell):
  Bit 15:     Priority
  Bits 14-13: Palette register (0-3)
  Bit 12:     Vertical flip
  Bit 11:     Horizontal flip
  Bits 10-0:  Tile index
*/

package tidytext

// =============================================================================
// Tile Geometry
// =============================================================================

const (
	TILE_WIDTH     = 8  // Pixel lanes per tile row
	TILE_HEIGHT    = 8  // Rows per tile
	BITS_PER_PIXEL = 4  // Width of one pixel lane
	ROW_BITS       = 32 // TILE_WIDTH * BITS_PER_PIXEL
	PIXEL_MASK     = 0xF
	TILE_BYTES     = TILE_HEIGHT * ROW_BITS / 8 // 32 bytes per 4bpp tile

	// ROW_MASK selects every lane of a row
	ROW_MASK uint32 = 0xFFFFFFFF
)

// =============================================================================
// Character Set
// =============================================================================

const (
	// Width table covers the 7-bit range; anything above uses the default
	MAX_CHAR_CODE = 127

	// Characters may be narrower than a tile but never wider
	DEFAULT_CHAR_WIDTH = TILE_WIDTH

	// Font assets start at the space character: glyph 0 is blank
	FONT_BASE_CODE  = ' '
	FIRST_PRINTABLE = '!'
	LAST_PRINTABLE  = '~'

	// Blank pixel columns inserted between consecutive characters
	DEFAULT_CHARACTER_PADDING = 1
)

// =============================================================================
// Palettes
// =============================================================================

const (
	SOURCE_INDEX_BACKGROUND = 0
	SOURCE_INDEX_PRIMARY    = 1
	SOURCE_INDEX_SECONDARY  = 2

	PALETTE_SLOT_MAX     = 15 // Highest colour slot inside a 16-colour palette
	PALETTE_REGISTER_MAX = 3  // Highest hardware palette register (PAL0-PAL3)
)

// =============================================================================
// Budgets
// =============================================================================

const (
	// Composition stops once a single line touches this many tiles
	// (roughly 85 characters of average width)
	MAX_TILES_PER_STRING = 64

	// Allocation bookkeeping entries kept between resets
	MAX_TILE_CACHE = 512

	// Formatted lines are cut to this many bytes before composition
	MAX_FORMATTED_LEN = 255

	// Default allocation boundary: font tiles grow downward from here so they
	// never meet sprite tiles allocated upward from the same point
	DEFAULT_HIGH_BOUNDARY = 1536
	DEFAULT_LOW_BOUNDARY  = 256
)

// =============================================================================
// Tile Attribute Word
// =============================================================================

const (
	TILE_ATTR_PRIORITY_SHIFT = 15
	TILE_ATTR_PALETTE_SHIFT  = 13
	TILE_ATTR_VFLIP_SHIFT    = 12
	TILE_ATTR_HFLIP_SHIFT    = 11

	TILE_ATTR_PRIORITY_MASK = 1 << TILE_ATTR_PRIORITY_SHIFT
	TILE_ATTR_PALETTE_MASK  = 3 << TILE_ATTR_PALETTE_SHIFT
	TILE_ATTR_VFLIP_MASK    = 1 << TILE_ATTR_VFLIP_SHIFT
	TILE_ATTR_HFLIP_MASK    = 1 << TILE_ATTR_HFLIP_SHIFT
	TILE_INDEX_MASK         = 0x07FF
)
