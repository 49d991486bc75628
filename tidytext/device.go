// device.go - Video device boundary for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

// Plane selects a tile-map layer of the display.
type Plane uint8

const (
	PLANE_A Plane = iota
	PLANE_B
	PLANE_WINDOW
)

func (p Plane) String() string {
	switch p {
	case PLANE_A:
		return "A"
	case PLANE_B:
		return "B"
	case PLANE_WINDOW:
		return "WINDOW"
	}
	return "?"
}

// TileAttr is a packed tile-map cell: PRI PAL[1:0] VF HF TILE[10:0].
type TileAttr uint16

// MakeTileAttr packs a cell attribute. palette is masked to two bits and
// index to eleven.
func MakeTileAttr(palette uint8, priority, vflip, hflip bool, index uint16) TileAttr {
	attr := TileAttr(palette&PALETTE_REGISTER_MAX) << TILE_ATTR_PALETTE_SHIFT
	if priority {
		attr |= TILE_ATTR_PRIORITY_MASK
	}
	if vflip {
		attr |= TILE_ATTR_VFLIP_MASK
	}
	if hflip {
		attr |= TILE_ATTR_HFLIP_MASK
	}
	return attr | TileAttr(index&TILE_INDEX_MASK)
}

func (a TileAttr) Palette() uint8    { return uint8((a & TILE_ATTR_PALETTE_MASK) >> TILE_ATTR_PALETTE_SHIFT) }
func (a TileAttr) Priority() bool    { return a&TILE_ATTR_PRIORITY_MASK != 0 }
func (a TileAttr) VFlip() bool       { return a&TILE_ATTR_VFLIP_MASK != 0 }
func (a TileAttr) HFlip() bool       { return a&TILE_ATTR_HFLIP_MASK != 0 }
func (a TileAttr) TileIndex() uint16 { return uint16(a & TILE_INDEX_MASK) }

// TileLoader uploads tile images into VRAM starting at startIndex. Uploads
// are fire-and-forget (see Syncer), but tiles may alias scratch storage that
// is rewritten by the next draw, so implementations copy before returning.
type TileLoader interface {
	LoadTiles(tiles []Tile, startIndex uint16)
}

// TileMapWriter sets one cell of a plane's tile map.
type TileMapWriter interface {
	SetTileMapXY(plane Plane, attr TileAttr, x, y int)
}

// Syncer blocks until every queued upload has landed in VRAM.
type Syncer interface {
	WaitDMACompletion()
}

// Device is the write-only display the renderer draws through.
type Device interface {
	TileLoader
	TileMapWriter
	Syncer
}
