// allocator_test.go - VRAM tile allocator tests for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

import "testing"

func TestAllocator_IssuesDescendingIndices(t *testing.T) {
	a := NewTileAllocator(1536, 256)

	first := a.Allocate(nil, 1)
	second := a.Allocate(nil, 1)
	if first[0] != 1535 || second[0] != 1534 {
		t.Fatalf("indices = %d, %d; want 1535, 1534", first[0], second[0])
	}
	if a.Allocated() != 2 {
		t.Fatalf("Allocated() = %d, want 2", a.Allocated())
	}

	batch := a.Allocate(nil, 3)
	for i := 1; i < len(batch); i++ {
		if batch[i] >= batch[i-1] {
			t.Fatalf("batch not strictly decreasing: %v", batch)
		}
	}
	if batch[0] != 1533 {
		t.Fatalf("batch[0] = %d, want 1533", batch[0])
	}
}

func TestAllocator_AppendsToDestination(t *testing.T) {
	a := NewTileAllocator(100, 0)
	buf := make([]uint16, 0, 4)
	buf = a.Allocate(buf, 2)
	buf = a.Allocate(buf, 2)
	want := []uint16{99, 98, 97, 96}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestAllocator_ResetRestartsAtBoundary(t *testing.T) {
	fresh := NewTileAllocator(1536, 256).Allocate(nil, 1)[0]

	a := NewTileAllocator(1536, 256)
	a.Allocate(nil, 10)
	a.ResetAll()
	if got := a.Allocate(nil, 1)[0]; got != fresh {
		t.Fatalf("first index after reset = %d, want %d", got, fresh)
	}
}

func TestAllocator_LowBoundaryIsReportedNotEnforced(t *testing.T) {
	a := NewTileAllocator(10, 5)

	a.Allocate(nil, 5)
	if a.Exhausted() || a.Remaining() != 0 {
		t.Fatalf("at budget: exhausted=%v remaining=%d", a.Exhausted(), a.Remaining())
	}

	got := a.Allocate(nil, 1)
	if len(got) != 1 || got[0] != 4 {
		t.Fatalf("over budget allocation = %v, want [4]", got)
	}
	if !a.Exhausted() || a.Remaining() != -1 {
		t.Fatalf("over budget: exhausted=%v remaining=%d", a.Exhausted(), a.Remaining())
	}

	a.ResetAll()
	if a.Exhausted() {
		t.Fatal("ResetAll should clear exhaustion")
	}
}

func TestAllocator_CacheRecordsAndInvalidates(t *testing.T) {
	a := NewTileAllocator(1536, 256)
	slots := a.Allocate(nil, 2)
	a.Record('h', 0, slots[0])
	a.Record('i', 3, slots[1])

	entries := a.CacheEntries()
	if len(entries) != 2 {
		t.Fatalf("%d entries, want 2", len(entries))
	}
	if e := entries[1]; e.CharIndex != 'i' || e.Position != 3 || e.TileIndex != 1534 || !e.Used || e.AccessCount != 1 {
		t.Fatalf("entry 1 = %+v", e)
	}

	a.ResetAll()
	if len(a.CacheEntries()) != 0 {
		t.Fatal("ResetAll should empty the cache")
	}
	if a.cache[0].Used || a.cache[1].Used {
		t.Fatal("ResetAll should clear Used flags")
	}
}

func TestAllocator_CacheIsBounded(t *testing.T) {
	a := NewTileAllocator(4096, 0)
	for i := 0; i < MAX_TILE_CACHE+10; i++ {
		slot := a.Allocate(nil, 1)[0]
		a.Record('x', i, slot)
	}
	if got := len(a.CacheEntries()); got != MAX_TILE_CACHE {
		t.Fatalf("%d entries, want %d", got, MAX_TILE_CACHE)
	}
	if a.Allocated() != MAX_TILE_CACHE+10 {
		t.Fatalf("allocation should continue past the cache, got %d", a.Allocated())
	}
}
