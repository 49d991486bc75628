// renderer.go - Public drawing API and tile-map binding for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
renderer.go - Proportional Text Renderer

Renderer owns every piece of state the text path needs: the compositor's
scratch tiles, the allocator and its cache, the index buffer and the line
encoder. Nothing is global, so independent renderers can share a process as
long as each is driven from one goroutine.

State machine:

	Uninitialized --Reset--> Ready --Reset--> Ready

Drawing on an uninitialized renderer performs the first Reset implicitly.

Signal Flow:
 1. Single/Multi/DrawString fold the line into 8-bit codes
 2. Compositor packs the codes into up to MAX_TILES_PER_STRING tiles
 3. Allocator assigns VRAM slots below the high boundary
 4. Each tile is uploaded to its slot and bound to cell (x+i, y)
*/

package tidytext

import (
	"fmt"
)

// Config holds the renderer settings. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	Padding      int         // Blank columns between characters
	HighBoundary int         // First slot above the text region
	LowBoundary  int         // Budget floor, reported not enforced
	EraseOnReset bool        // Blank every used slot during Reset
	Widths       *WidthTable // nil selects the stock table
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Padding:      DEFAULT_CHARACTER_PADDING,
		HighBoundary: DEFAULT_HIGH_BOUNDARY,
		LowBoundary:  DEFAULT_LOW_BOUNDARY,
	}
}

// Stats is a snapshot of allocation state.
type Stats struct {
	Ready          bool
	TilesAllocated int
	TilesRemaining int
	Exhausted      bool
	LinesDrawn     int
	LinesTruncated int
	CacheEntries   int
}

// Renderer draws proportional text through a tile device.
type Renderer struct {
	cfg    Config
	device Device

	comp    Compositor
	alloc   TileAllocator
	encoder *LineEncoder

	indices [MAX_TILES_PER_STRING]uint16
	line    [MAX_FORMATTED_LEN]byte

	ready          bool
	linesDrawn     int
	linesTruncated int
}

// New creates an uninitialized renderer drawing font glyphs through device.
func New(device Device, font GlyphSource, cfg Config) *Renderer {
	widths := cfg.Widths
	if widths == nil {
		wt := DefaultWidthTable()
		widths = &wt
	}
	r := &Renderer{
		cfg:     cfg,
		device:  device,
		encoder: NewLineEncoder(),
	}
	r.comp = Compositor{Widths: widths, Font: font, Padding: cfg.Padding}
	r.alloc = TileAllocator{HighBoundary: cfg.HighBoundary, LowBoundary: cfg.LowBoundary}
	return r
}

// Config returns the settings the renderer was built with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Ready reports whether Reset has run at least once.
func (r *Renderer) Ready() bool {
	return r.ready
}

// SetFont swaps the glyph source used by subsequent draws.
func (r *Renderer) SetFont(font GlyphSource) {
	r.comp.Font = font
}

// SetWidths swaps the width table used by subsequent draws.
func (r *Renderer) SetWidths(widths *WidthTable) {
	if widths == nil {
		wt := DefaultWidthTable()
		widths = &wt
	}
	r.comp.Widths = widths
	r.cfg.Widths = widths
}

// Reset reclaims every allocated slot and clears the cache. With
// EraseOnReset the used slots are blanked first. Reset returns only after
// the device has finished all queued uploads.
func (r *Renderer) Reset() {
	if r.cfg.EraseOnReset && r.device != nil {
		blank := []Tile{{}}
		for n := 0; n < r.alloc.Allocated(); n++ {
			r.device.LoadTiles(blank, uint16(r.alloc.IndexFor(n))&TILE_INDEX_MASK)
		}
	}

	r.alloc.ResetAll()
	r.linesDrawn = 0
	r.linesTruncated = 0
	r.ready = true

	if r.device != nil {
		r.device.WaitDMACompletion()
	}
}

func (r *Renderer) ensureReady() {
	if !r.ready {
		logger().Debug("tidytext: drawing before first reset, resetting now")
		r.Reset()
	}
}

// Single formats its arguments with fmt and draws the result at (x, y).
// It returns the number of tiles bound.
func (r *Renderer) Single(x, y int, plane Plane, palette, primary, secondary uint8, format string, args ...any) int {
	return r.DrawString(x, y, plane, palette, primary, secondary, fmt.Sprintf(format, args...))
}

// Multi draws lines[i] at row y+i. Empty lines bind nothing but still take
// their row. It returns the total number of tiles bound.
func (r *Renderer) Multi(x, y int, plane Plane, palette, primary, secondary uint8, lines []string) int {
	total := 0
	for i, line := range lines {
		total += r.DrawString(x, y+i, plane, palette, primary, secondary, line)
	}
	return total
}

// DrawString composes a pre-formatted line and binds it at (x, y). Lines
// longer than MAX_FORMATTED_LEN bytes, or needing more than
// MAX_TILES_PER_STRING tiles, are cut short. It returns the number of tiles
// bound.
func (r *Renderer) DrawString(x, y int, plane Plane, palette, primary, secondary uint8, s string) int {
	if len(s) == 0 {
		return 0
	}
	r.ensureReady()

	codes := r.encoder.Encode(r.line[:], s)
	tiles := r.comp.Build(codes, primary, secondary)
	if len(tiles) == 0 {
		return 0
	}

	indices := r.alloc.Allocate(r.indices[:0], len(tiles))
	for i, slot := range indices {
		if opener := r.comp.Opener(i); opener >= 0 {
			r.alloc.Record(codes[opener], opener, slot)
		}
	}

	r.bind(tiles, indices, x, y, plane, palette)

	r.linesDrawn++
	if r.comp.Truncated() {
		r.linesTruncated++
	}
	return len(tiles)
}

// bind uploads each tile to its slot and points cell (x+i, y) at it.
func (r *Renderer) bind(tiles []Tile, indices []uint16, x, y int, plane Plane, palette uint8) {
	if r.device == nil {
		return
	}
	if palette > PALETTE_REGISTER_MAX {
		palette = PALETTE_REGISTER_MAX
	}
	for i := range tiles {
		r.device.LoadTiles(tiles[i:i+1], indices[i])
		r.device.SetTileMapXY(plane, MakeTileAttr(palette, false, false, false, indices[i]), x+i, y)
	}
}

// Stats returns a snapshot of allocation and drawing counters.
func (r *Renderer) Stats() Stats {
	return Stats{
		Ready:          r.ready,
		TilesAllocated: r.alloc.Allocated(),
		TilesRemaining: r.alloc.Remaining(),
		Exhausted:      r.alloc.Exhausted(),
		LinesDrawn:     r.linesDrawn,
		LinesTruncated: r.linesTruncated,
		CacheEntries:   len(r.alloc.CacheEntries()),
	}
}

// CacheEntries exposes the allocation cache, oldest first.
func (r *Renderer) CacheEntries() []TileCacheEntry {
	return r.alloc.CacheEntries()
}
