// text_host.go - Serialised access to the renderer and VDP for TidyText


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

package main

import (
	"strings"
	"sync"

	"github.com/intuitionamiga/TidyText/tidytext"
)

// Pasted lines scroll through the bottom rows of plane A.
const (
	PASTE_ROW_FIRST      = 23
	PASTE_ROW_LAST       = VDP_SCREEN_CELLS_Y - 1
	PASTE_PALETTE        = PAL3
	PASTE_PRIMARY_SLOT   = 1
	PASTE_SECONDARY_SLOT = 2
	PASTE_MAX_BYTES      = 4096
	PASTE_ROWS           = PASTE_ROW_LAST - PASTE_ROW_FIRST + 1
)

// Each paste row owns MAX_TILES_PER_STRING slots directly below the system
// font. The main text region must stay under PASTE_TILE_BASE.
const PASTE_TILE_BASE = TILE_FONT_INDEX - PASTE_ROWS*tidytext.MAX_TILES_PER_STRING // 1632

// TextHost owns a renderer and the VDP it draws through. Scripts, the
// window's paste handler and main all draw through it, so every call holds
// the host lock for the duration of the draw.
type TextHost struct {
	mu       sync.Mutex
	vdp      *TilePlaneVDP
	renderer *tidytext.Renderer
	pasters  [PASTE_ROWS]*tidytext.Renderer
	pasteRow int
}

func NewTextHost(vdp *TilePlaneVDP, font tidytext.GlyphSource, cfg tidytext.Config) *TextHost {
	h := &TextHost{
		vdp:      vdp,
		renderer: tidytext.New(vdp, font, cfg),
		pasteRow: PASTE_ROW_FIRST,
	}
	for i := range h.pasters {
		pc := cfg
		pc.LowBoundary = PASTE_TILE_BASE + i*tidytext.MAX_TILES_PER_STRING
		pc.HighBoundary = pc.LowBoundary + tidytext.MAX_TILES_PER_STRING
		pc.EraseOnReset = false
		h.pasters[i] = tidytext.New(vdp, font, pc)
	}
	return h
}

func (h *TextHost) publish() {
	committed, dropped := h.vdp.DMAStats()
	runtimeStatus.setText(h.renderer.Stats(), committed, dropped)
}

func (h *TextHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renderer.Reset()
	for _, p := range h.pasters {
		p.Reset()
	}
	h.pasteRow = PASTE_ROW_FIRST
	h.publish()
}

func (h *TextHost) Palette(start int, colors []uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.vdp.SetColors(start, colors)
}

// Text draws fixed-width system font text.
func (h *TextHost) Text(plane tidytext.Plane, s string, x, y int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.vdp.DrawTextBG(plane, s, x, y)
}

func (h *TextHost) DrawString(x, y int, plane tidytext.Plane, palette, primary, secondary uint8, s string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.renderer.DrawString(x, y, plane, palette, primary, secondary, s)
	h.publish()
	return n
}

func (h *TextHost) Single(x, y int, plane tidytext.Plane, palette, primary, secondary uint8, format string, args ...any) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.renderer.Single(x, y, plane, palette, primary, secondary, format, args...)
	h.publish()
	return n
}

func (h *TextHost) Multi(x, y int, plane tidytext.Plane, palette, primary, secondary uint8, lines []string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := h.renderer.Multi(x, y, plane, palette, primary, secondary, lines)
	h.publish()
	return n
}

func (h *TextHost) Stats() tidytext.Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.renderer.Stats()
}

// Paste draws the first line of text on the next paste row, clearing the
// row and reclaiming its slots first. Returns the row used, or -1 if there
// was nothing to draw.
func (h *TextHost) Paste(text string) int {
	line := firstPasteLine(text)
	if line == "" {
		return -1
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	row := h.pasteRow
	for x := 0; x < VDP_PLANE_WIDTH; x++ {
		h.vdp.SetTileMapXY(tidytext.PLANE_A, 0, x, row)
	}
	paster := h.pasters[row-PASTE_ROW_FIRST]
	paster.Reset()
	paster.DrawString(0, row, tidytext.PLANE_A, PASTE_PALETTE, PASTE_PRIMARY_SLOT, PASTE_SECONDARY_SLOT, line)
	h.pasteRow++
	if h.pasteRow > PASTE_ROW_LAST {
		h.pasteRow = PASTE_ROW_FIRST
	}
	runtimeStatus.addPasted()
	h.publish()
	return row
}

// firstPasteLine normalises line endings and tabs and returns the first
// non-empty line, capped at PASTE_MAX_BYTES.
func firstPasteLine(text string) string {
	if len(text) > PASTE_MAX_BYTES {
		text = text[:PASTE_MAX_BYTES]
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}
