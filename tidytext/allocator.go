// allocator.go - Downward-growing VRAM tile allocator for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
allocator.go - VRAM Tile Allocator

Composited tiles take VRAM slots counting down from a fixed high boundary:

	index(n) = highBoundary - n - 1

so the nth tile allocated since the last reset sits just below the (n-1)th.
Sprite tiles allocated upward from the same boundary by other code never meet
them. Allocation is strictly monotonic: slots are never freed individually and
nothing is reused until ResetAll.

The low boundary is not enforced. Crossing it is reported by Exhausted and
logged at Warn level, but indices keep being issued.

Each allocation also records a TileCacheEntry (character, string position,
slot). The cache is bookkeeping only: it is never consulted before allocating.
*/

package tidytext

// TileCacheEntry records who owns an allocated VRAM slot.
type TileCacheEntry struct {
	CharIndex   byte   // Character code that opened the tile
	Position    uint16 // Position of that character in its line
	TileIndex   uint16 // VRAM slot
	Used        bool
	AccessCount uint32
}

// TileAllocator hands out VRAM tile slots below HighBoundary.
type TileAllocator struct {
	HighBoundary int
	LowBoundary  int

	tilesAllocated int
	cache          [MAX_TILE_CACHE]TileCacheEntry
	cacheSize      int
	warned         bool
}

// NewTileAllocator creates an allocator for the slot range [low, high).
func NewTileAllocator(high, low int) *TileAllocator {
	return &TileAllocator{HighBoundary: high, LowBoundary: low}
}

// IndexFor returns the slot the nth allocation since reset receives.
func (a *TileAllocator) IndexFor(n int) int {
	return a.HighBoundary - n - 1
}

// Allocate appends the next n slots to dst and returns the extended slice.
func (a *TileAllocator) Allocate(dst []uint16, n int) []uint16 {
	for i := 0; i < n; i++ {
		index := a.IndexFor(a.tilesAllocated)
		a.tilesAllocated++
		dst = append(dst, uint16(index)&TILE_INDEX_MASK)
	}
	if a.Exhausted() && !a.warned {
		a.warned = true
		logger().Warn("tidytext: tile allocation crossed low boundary",
			"allocated", a.tilesAllocated, "high", a.HighBoundary, "low", a.LowBoundary)
	}
	return dst
}

// Record adds a cache entry for slot. Entries past MAX_TILE_CACHE are dropped.
func (a *TileAllocator) Record(code byte, position int, slot uint16) {
	if a.cacheSize >= MAX_TILE_CACHE {
		return
	}
	a.cache[a.cacheSize] = TileCacheEntry{
		CharIndex:   code,
		Position:    uint16(position),
		TileIndex:   slot,
		Used:        true,
		AccessCount: 1,
	}
	a.cacheSize++
}

// ResetAll returns the allocator to its power-on state and invalidates every
// cache entry.
func (a *TileAllocator) ResetAll() {
	for i := range a.cache {
		a.cache[i].Used = false
		a.cache[i].AccessCount = 0
	}
	a.tilesAllocated = 0
	a.cacheSize = 0
	a.warned = false
}

// Allocated returns how many slots were issued since the last reset.
func (a *TileAllocator) Allocated() int {
	return a.tilesAllocated
}

// Remaining returns the slots left above the low boundary (may be negative).
func (a *TileAllocator) Remaining() int {
	return a.HighBoundary - a.LowBoundary - a.tilesAllocated
}

// Exhausted reports whether allocations have run below the low boundary.
func (a *TileAllocator) Exhausted() bool {
	return a.Remaining() < 0
}

// CacheEntries returns the live cache entries in allocation order.
func (a *TileAllocator) CacheEntries() []TileCacheEntry {
	return a.cache[:a.cacheSize]
}
