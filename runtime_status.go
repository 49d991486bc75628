package main

import (
	"fmt"
	"sync"

	"github.com/intuitionamiga/TidyText/tidytext"
)

type runtimeStatusSnapshot struct {
	fontName string
	scene    string

	text tidytext.Stats

	dmaCommitted uint64
	dmaDropped   uint64
	pastedLines  int
}

type runtimeStatusStore struct {
	mu sync.RWMutex
	runtimeStatusSnapshot
}

func (s *runtimeStatusStore) setSource(fontName, scene string) {
	s.mu.Lock()
	s.fontName = fontName
	s.scene = scene
	s.mu.Unlock()
}

func (s *runtimeStatusStore) setText(st tidytext.Stats, committed, dropped uint64) {
	s.mu.Lock()
	s.text = st
	s.dmaCommitted = committed
	s.dmaDropped = dropped
	s.mu.Unlock()
}

func (s *runtimeStatusStore) addPasted() {
	s.mu.Lock()
	s.pastedLines++
	s.mu.Unlock()
}

func (s *runtimeStatusStore) snapshot() runtimeStatusSnapshot {
	s.mu.RLock()
	snap := s.runtimeStatusSnapshot
	s.mu.RUnlock()
	return snap
}

// tileLine summarises allocation for the status bar and verbose output.
func (snap runtimeStatusSnapshot) tileLine() string {
	state := "idle"
	if snap.text.Ready {
		state = "ready"
	}
	if snap.text.Exhausted {
		state = "over budget"
	}
	return fmt.Sprintf("%d used  %d free  %d cached  %s",
		snap.text.TilesAllocated, snap.text.TilesRemaining, snap.text.CacheEntries, state)
}

// lineLine summarises drawn lines and DMA traffic.
func (snap runtimeStatusSnapshot) lineLine() string {
	return fmt.Sprintf("%d drawn  %d truncated  %d pasted  dma %d/%d",
		snap.text.LinesDrawn, snap.text.LinesTruncated, snap.pastedLines, snap.dmaCommitted, snap.dmaDropped)
}

var runtimeStatus = &runtimeStatusStore{}
