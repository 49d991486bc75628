// pixel_packer.go - Bit-level glyph masking, palette remap and column copy for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
pixel_packer.go - 4bpp Pixel Lane Operations

Every operation here works on whole 32-bit rows with mask-and-shift arithmetic.
A column range [start, start+n) of a row is selected by

	ROW_MASK << (32 - n*4) >> (start*4)

and moving a range from source column s to destination column d is a left
shift by s*4 followed by a right shift by d*4. Go defines shifts of 32 or more
as zero, so n == 0 and ranges that run off the right edge need no special case.
*/

package tidytext

// Tile is one 8x8 4bpp image: glyphs from the font asset and composited
// output tiles share the layout (row[i], pixel 0 in the top nibble).
type Tile [TILE_HEIGHT]uint32

// laneShift returns the right shift that brings column col down to bits 3..0.
func laneShift(col int) uint {
	return uint(ROW_BITS - BITS_PER_PIXEL - col*BITS_PER_PIXEL)
}

// leadingMask selects the first n lanes of a row.
func leadingMask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n >= TILE_WIDTH {
		return ROW_MASK
	}
	return ROW_MASK << uint(ROW_BITS-n*BITS_PER_PIXEL)
}

// PixelAt returns the 4-bit lane at (col,row). Out-of-range reads return 0.
func (t Tile) PixelAt(col, row int) uint8 {
	if col < 0 || col >= TILE_WIDTH || row < 0 || row >= TILE_HEIGHT {
		return 0
	}
	return uint8((t[row] >> laneShift(col)) & PIXEL_MASK)
}

// SetPixel writes the low 4 bits of v into lane (col,row).
func (t *Tile) SetPixel(col, row int, v uint8) {
	if col < 0 || col >= TILE_WIDTH || row < 0 || row >= TILE_HEIGHT {
		return
	}
	shift := laneShift(col)
	t[row] = t[row]&^(PIXEL_MASK<<shift) | uint32(v&PIXEL_MASK)<<shift
}

// IsBlank reports whether every lane is zero.
func (t Tile) IsBlank() bool {
	for _, row := range t {
		if row != 0 {
			return false
		}
	}
	return true
}

// MaskColumns zeroes every lane at column >= width in all rows.
func MaskColumns(t *Tile, width int) {
	mask := leadingMask(width)
	for row := range t {
		t[row] &= mask
	}
}

// ClampSlot limits a palette slot to the 16 entries of one palette.
func ClampSlot(slot uint8) uint8 {
	if slot > PALETTE_SLOT_MAX {
		return PALETTE_SLOT_MAX
	}
	return slot
}

// RemapPalette rewrites source indices 1 and 2 to the primary and secondary
// slots (clamped to 15). Index 0 stays 0 and every other index is dropped to 0.
func RemapPalette(t *Tile, primary, secondary uint8) {
	primary = ClampSlot(primary)
	secondary = ClampSlot(secondary)
	for row := range t {
		src := t[row]
		var out uint32
		for col := 0; col < TILE_WIDTH; col++ {
			shift := laneShift(col)
			switch (src >> shift) & PIXEL_MASK {
			case SOURCE_INDEX_PRIMARY:
				out |= uint32(primary) << shift
			case SOURCE_INDEX_SECONDARY:
				out |= uint32(secondary) << shift
			}
		}
		t[row] = out
	}
}

// CopyColumns copies numCols lanes starting at srcStartCol of src into dst at
// dstStartCol, for all rows. Destination lanes outside the written range are
// left untouched. numCols is clipped to the source edge and to the destination
// edge; a zero-width copy does nothing.
func CopyColumns(src, dst *Tile, srcStartCol, numCols, dstStartCol int) {
	if srcStartCol < 0 || dstStartCol < 0 || srcStartCol >= TILE_WIDTH || dstStartCol >= TILE_WIDTH {
		return
	}
	if srcStartCol+numCols > TILE_WIDTH {
		numCols = TILE_WIDTH - srcStartCol
	}
	if numCols <= 0 {
		return
	}

	keep := leadingMask(numCols)
	srcShift := uint(srcStartCol * BITS_PER_PIXEL)
	dstShift := uint(dstStartCol * BITS_PER_PIXEL)
	destMask := keep >> dstShift

	for row := range dst {
		extracted := (src[row] << srcShift) & keep
		dst[row] = dst[row]&^destMask | (extracted>>dstShift)&destMask
	}
}

// ExtractColumns returns lanes [startCol, startCol+numCols) of t moved to
// column 0 with every other lane cleared.
func ExtractColumns(t *Tile, startCol, numCols int) Tile {
	var out Tile
	CopyColumns(t, &out, startCol, numCols, 0)
	return out
}
