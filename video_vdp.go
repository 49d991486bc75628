// video_vdp.go - Tile plane video display processor for TidyText


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
video_vdp.go - Tile Plane VDP Emulation

This module implements the display the text renderer draws through: a
tile/plane video processor with Mega Drive style VRAM, tile maps and CRAM.

Features:
- 2048 VRAM tiles of 8x8 4bpp pixels
- Planes A, B and WINDOW, 64x32 cells each, 320x224 visible
- Per-cell palette register, priority, and horizontal/vertical flip
- 64-entry CRAM in 0000BBB0GGG0RRR0 format, slot 0 of every palette transparent
- Queued DMA tile uploads with an explicit completion barrier
- Fixed-width system font at TILE_FONT_INDEX for DrawTextBG
- Implements tidytext.Device and VideoSource

Signal Flow:
1. Renderer queues tile uploads with LoadTiles (copied on enqueue)
2. Renderer binds cells with SetTileMapXY
3. WaitDMACompletion (or the next frame) commits queued uploads to VRAM
4. RenderFrame composes B, A and WINDOW through CRAM into RGBA
5. Compositor collects the frame via GetFrame() and sends it to the display
*/

package main

import (
	"sync"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

type dmaTransfer struct {
	start uint16
	tiles []tidytext.Tile
}

// TilePlaneVDP is the emulated tile display.
type TilePlaneVDP struct {
	mutex sync.RWMutex

	vram   [VDP_VRAM_TILES]tidytext.Tile
	planes [VDP_PLANE_COUNT][VDP_PLANE_WIDTH * VDP_PLANE_HEIGHT]tidytext.TileAttr
	cram   [VDP_CRAM_SIZE]uint16

	backdrop uint8 // CRAM index shown where every plane is transparent

	dmaQueue    []dmaTransfer
	dmaTiles    uint64 // Tiles committed since power-on
	dmaDropped  uint64 // Tiles that fell outside VRAM
	systemFont  tileset.Tileset
	enabled     bool
	vblank      bool
	frameCount  uint64
	frameBuffer []byte
}

// NewTilePlaneVDP creates a powered-on VDP with the system font loaded.
func NewTilePlaneVDP() *TilePlaneVDP {
	v := &TilePlaneVDP{
		systemFont:  tileset.Basic(),
		frameBuffer: make([]byte, VDP_SCREEN_WIDTH*VDP_SCREEN_HEIGHT*VDP_BYTES_PER_PIXEL),
	}
	v.Reset()
	return v
}

// Reset restores power-on state: blank VRAM and planes, black CRAM, empty
// DMA queue, system font reloaded.
func (v *TilePlaneVDP) Reset() {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.vram = [VDP_VRAM_TILES]tidytext.Tile{}
	for p := range v.planes {
		clear(v.planes[p][:])
	}
	clear(v.cram[:])
	v.backdrop = 0
	v.dmaQueue = v.dmaQueue[:0]
	v.vblank = false
	v.enabled = true

	for i := 0; i < FONT_LEN && i < len(v.systemFont); i++ {
		v.vram[TILE_FONT_INDEX+i] = v.systemFont[i]
	}
}

// =============================================================================
// tidytext.Device
// =============================================================================

// LoadTiles queues a DMA upload. The tiles are copied so the caller may
// reuse its buffer immediately.
func (v *TilePlaneVDP) LoadTiles(tiles []tidytext.Tile, startIndex uint16) {
	if len(tiles) == 0 {
		return
	}
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.dmaQueue = append(v.dmaQueue, dmaTransfer{
		start: startIndex,
		tiles: append([]tidytext.Tile(nil), tiles...),
	})
	if len(v.dmaQueue) >= VDP_DMA_QUEUE_LEN {
		v.flushDMALocked()
	}
}

// SetTileMapXY writes one plane cell. Cells outside the plane are ignored.
func (v *TilePlaneVDP) SetTileMapXY(plane tidytext.Plane, attr tidytext.TileAttr, x, y int) {
	if int(plane) >= VDP_PLANE_COUNT || x < 0 || y < 0 || x >= VDP_PLANE_WIDTH || y >= VDP_PLANE_HEIGHT {
		return
	}
	v.mutex.Lock()
	v.planes[plane][y*VDP_PLANE_WIDTH+x] = attr
	v.mutex.Unlock()
}

// WaitDMACompletion commits every queued upload.
func (v *TilePlaneVDP) WaitDMACompletion() {
	v.mutex.Lock()
	v.flushDMALocked()
	v.mutex.Unlock()
}

func (v *TilePlaneVDP) flushDMALocked() {
	for _, xfer := range v.dmaQueue {
		for i, t := range xfer.tiles {
			idx := int(xfer.start) + i
			if idx >= VDP_VRAM_TILES {
				v.dmaDropped++
				continue
			}
			v.vram[idx] = t
			v.dmaTiles++
		}
	}
	clear(v.dmaQueue)
	v.dmaQueue = v.dmaQueue[:0]
}

// PendingDMA returns the number of queued transfers.
func (v *TilePlaneVDP) PendingDMA() int {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return len(v.dmaQueue)
}

// DMAStats returns tiles committed and tiles dropped outside VRAM.
func (v *TilePlaneVDP) DMAStats() (committed, dropped uint64) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.dmaTiles, v.dmaDropped
}

// =============================================================================
// VRAM, Plane and CRAM Access
// =============================================================================

// TileAt returns the committed VRAM contents of a slot.
func (v *TilePlaneVDP) TileAt(index int) tidytext.Tile {
	if index < 0 || index >= VDP_VRAM_TILES {
		return tidytext.Tile{}
	}
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.vram[index]
}

// CellAt returns a plane cell's attribute word.
func (v *TilePlaneVDP) CellAt(plane tidytext.Plane, x, y int) tidytext.TileAttr {
	if int(plane) >= VDP_PLANE_COUNT || x < 0 || y < 0 || x >= VDP_PLANE_WIDTH || y >= VDP_PLANE_HEIGHT {
		return 0
	}
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.planes[plane][y*VDP_PLANE_WIDTH+x]
}

// ClearPlane points every cell of plane back at tile 0.
func (v *TilePlaneVDP) ClearPlane(plane tidytext.Plane) {
	if int(plane) >= VDP_PLANE_COUNT {
		return
	}
	v.mutex.Lock()
	clear(v.planes[plane][:])
	v.mutex.Unlock()
}

// SetColors loads CRAM entries from start. Entries past the end of CRAM are
// dropped.
func (v *TilePlaneVDP) SetColors(start int, colors []uint16) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for i, c := range colors {
		idx := start + i
		if idx < 0 || idx >= VDP_CRAM_SIZE {
			continue
		}
		v.cram[idx] = c & VDP_COLOR_MASK
	}
}

// Color returns a CRAM entry.
func (v *TilePlaneVDP) Color(index int) uint16 {
	if index < 0 || index >= VDP_CRAM_SIZE {
		return 0
	}
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.cram[index]
}

// SetBackgroundColor selects the backdrop CRAM entry.
func (v *TilePlaneVDP) SetBackgroundColor(index uint8) {
	v.mutex.Lock()
	v.backdrop = index % VDP_CRAM_SIZE
	v.mutex.Unlock()
}

// DrawTextBG draws s with the fixed-width system font, one character per
// cell from (x, y), using palette register 0. Characters outside the font
// draw the space glyph. Text past the plane edge is clipped.
func (v *TilePlaneVDP) DrawTextBG(plane tidytext.Plane, s string, x, y int) {
	if int(plane) >= VDP_PLANE_COUNT || y < 0 || y >= VDP_PLANE_HEIGHT {
		return
	}
	v.mutex.Lock()
	defer v.mutex.Unlock()
	for i := 0; i < len(s); i++ {
		cx := x + i
		if cx < 0 {
			continue
		}
		if cx >= VDP_PLANE_WIDTH {
			break
		}
		glyph := 0
		if c := s[i]; c >= tidytext.FONT_BASE_CODE && int(c)-tidytext.FONT_BASE_CODE < FONT_LEN {
			glyph = int(c) - tidytext.FONT_BASE_CODE
		}
		attr := tidytext.MakeTileAttr(PAL0, false, false, false, uint16(TILE_FONT_INDEX+glyph))
		v.planes[plane][y*VDP_PLANE_WIDTH+cx] = attr
	}
}

// =============================================================================
// Rendering
// =============================================================================

// mdColorToRGB expands a 9-bit CRAM word to 8-bit channels.
func mdColorToRGB(c uint16) (r, g, b uint8) {
	scale := func(shift uint) uint8 {
		return uint8(int(c>>shift&VDP_COLOR_CHANNEL) * 255 / VDP_COLOR_MAX_STEP)
	}
	return scale(VDP_COLOR_R_SHIFT), scale(VDP_COLOR_G_SHIFT), scale(VDP_COLOR_B_SHIFT)
}

// RenderFrame commits pending DMA and composes the visible 320x224 area.
// Layer order, back to front: low priority B, A, WINDOW, then high priority
// B, A, WINDOW. Pixel index 0 is transparent in every palette.
func (v *TilePlaneVDP) RenderFrame() []byte {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.flushDMALocked()

	var rgb [VDP_CRAM_SIZE][3]uint8
	for i, c := range v.cram {
		rgb[i][0], rgb[i][1], rgb[i][2] = mdColorToRGB(c)
	}

	back := rgb[v.backdrop]
	for i := 0; i < len(v.frameBuffer); i += VDP_BYTES_PER_PIXEL {
		v.frameBuffer[i] = back[0]
		v.frameBuffer[i+1] = back[1]
		v.frameBuffer[i+2] = back[2]
		v.frameBuffer[i+3] = 255
	}

	order := []tidytext.Plane{tidytext.PLANE_B, tidytext.PLANE_A, tidytext.PLANE_WINDOW}
	for _, high := range []bool{false, true} {
		for _, plane := range order {
			for cy := 0; cy < VDP_SCREEN_CELLS_Y; cy++ {
				for cx := 0; cx < VDP_SCREEN_CELLS_X; cx++ {
					attr := v.planes[plane][cy*VDP_PLANE_WIDTH+cx]
					if attr.Priority() != high {
						continue
					}
					v.renderCell(cx, cy, attr, &rgb)
				}
			}
		}
	}
	return v.frameBuffer
}

// renderCell draws one tile-map cell over what is already in the frame.
func (v *TilePlaneVDP) renderCell(cellX, cellY int, attr tidytext.TileAttr, rgb *[VDP_CRAM_SIZE][3]uint8) {
	tile := &v.vram[attr.TileIndex()]
	if tile.IsBlank() {
		return
	}
	base := int(attr.Palette()) * VDP_PALETTE_SIZE

	for py := 0; py < tidytext.TILE_HEIGHT; py++ {
		ty := py
		if attr.VFlip() {
			ty = tidytext.TILE_HEIGHT - 1 - py
		}
		for px := 0; px < tidytext.TILE_WIDTH; px++ {
			tx := px
			if attr.HFlip() {
				tx = tidytext.TILE_WIDTH - 1 - px
			}
			idx := tile.PixelAt(tx, ty)
			if idx == 0 {
				continue
			}
			c := rgb[base+int(idx)]
			offset := ((cellY*tidytext.TILE_HEIGHT+py)*VDP_SCREEN_WIDTH + cellX*tidytext.TILE_WIDTH + px) * VDP_BYTES_PER_PIXEL
			v.frameBuffer[offset] = c[0]
			v.frameBuffer[offset+1] = c[1]
			v.frameBuffer[offset+2] = c[2]
		}
	}
}

// =============================================================================
// VideoSource Interface Implementation
// =============================================================================

// GetFrame returns the current rendered frame (nil if disabled)
func (v *TilePlaneVDP) GetFrame() []byte {
	if !v.IsEnabled() {
		return nil
	}
	return v.RenderFrame()
}

func (v *TilePlaneVDP) IsEnabled() bool {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.enabled
}

func (v *TilePlaneVDP) SetEnabled(enabled bool) {
	v.mutex.Lock()
	v.enabled = enabled
	v.mutex.Unlock()
}

// GetLayer returns the Z-order for compositing (higher = on top)
func (v *TilePlaneVDP) GetLayer() int {
	return VDP_LAYER
}

func (v *TilePlaneVDP) GetDimensions() (w, h int) {
	return VDP_SCREEN_WIDTH, VDP_SCREEN_HEIGHT
}

// SignalVSync is called by the compositor after a frame is sent.
func (v *TilePlaneVDP) SignalVSync() {
	v.mutex.Lock()
	v.vblank = true
	v.frameCount++
	v.mutex.Unlock()
}

// FrameCount returns the number of frames delivered to the display.
func (v *TilePlaneVDP) FrameCount() uint64 {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	return v.frameCount
}
