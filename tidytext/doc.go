// doc.go - Package documentation for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

// Package tidytext draws proportional bitmap text on tile-based displays.
//
// Tile hardware only knows whole 8x8 cells. tidytext measures each character
// with a static width table, packs the glyphs edge to edge into freshly built
// 4bpp tiles, allocates VRAM slots for them downward from a fixed boundary and
// binds consecutive tile-map cells to the result.
//
//	r := tidytext.New(vdp, font, tidytext.DefaultConfig())
//	r.Reset()
//	r.Single(10, 20, tidytext.PLANE_A, 2, 8, 8, "score: %d", score)
//	r.Multi(0, 5, tidytext.PLANE_A, 1, 9, 9, lines)
//
// A Renderer is not safe for concurrent use; calls from more than one
// goroutine must be serialized by the caller.
package tidytext
