// compositor.go - Proportional string-to-tile compositor for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

/*
compositor.go - String Compositor

Packs a line of fixed-width 8x8 glyphs edge to edge by their measured widths
and emits the minimal run of new 8x8 tiles that holds the result.

Per character:
 1. Look up width, fetch the glyph, mask it to width, remap its palette.
 2. If it fits in the current tile, copy all columns at the cursor.
 3. Otherwise copy the head into the current tile, open the next tile and
    copy the tail at column 0.
 4. Unless it is the last character, advance the cursor by the padding;
    padding may run across whole blank tiles.

Tile images live in a fixed scratch array of MAX_TILES_PER_STRING entries;
a line that needs more is silently cut short.
*/

package tidytext

// Compositor turns a line of character codes into packed tile images.
// The returned tiles alias internal scratch storage and stay valid until the
// next Build call. A Compositor is not safe for concurrent use.
type Compositor struct {
	Widths  *WidthTable
	Font    GlyphSource
	Padding int

	tiles     [MAX_TILES_PER_STRING]Tile
	openers   [MAX_TILES_PER_STRING]int
	truncated bool
}

var stockWidths = DefaultWidthTable()

// NewCompositor creates a compositor over font using widths and padding.
// A nil width table falls back to the stock table.
func NewCompositor(font GlyphSource, widths *WidthTable, padding int) *Compositor {
	return &Compositor{
		Widths:  widths,
		Font:    font,
		Padding: padding,
	}
}

func (c *Compositor) widthOf(code byte) int {
	if c.Widths == nil {
		return stockWidths.Width(code)
	}
	return c.Widths.Width(code)
}

// place merges columns of glyph into output tile tileNum and remembers the
// first string position that wrote into it.
func (c *Compositor) place(glyph *Tile, tileNum, srcCol, numCols, dstCol, pos int) {
	if tileNum >= MAX_TILES_PER_STRING {
		c.truncated = true
		return
	}
	if numCols <= 0 {
		return
	}
	CopyColumns(glyph, &c.tiles[tileNum], srcCol, numCols, dstCol)
	if c.openers[tileNum] < 0 {
		c.openers[tileNum] = pos
	}
}

// Build composes codes into tiles with glyph index 1 drawn in primary and
// index 2 in secondary. An empty line yields no tiles.
func (c *Compositor) Build(codes []byte, primary, secondary uint8) []Tile {
	c.truncated = false
	n := len(codes)
	if n == 0 {
		return c.tiles[:0]
	}

	primary = ClampSlot(primary)
	secondary = ClampSlot(secondary)
	padding := c.Padding
	if padding < 0 {
		padding = 0
	}

	for i := range c.tiles {
		c.tiles[i] = Tile{}
		c.openers[i] = -1
	}

	currentTile := 0
	currentCol := 0
	tilesUsed := 0

	for pos := 0; pos < n; pos++ {
		if currentTile >= MAX_TILES_PER_STRING {
			c.truncated = true
			break
		}

		code := codes[pos]
		width := c.widthOf(code)
		glyph := FetchGlyph(c.Font, code)
		MaskColumns(&glyph, width)
		RemapPalette(&glyph, primary, secondary)

		if currentCol+width <= TILE_WIDTH {
			c.place(&glyph, currentTile, 0, width, currentCol, pos)
			currentCol += width
		} else {
			head := TILE_WIDTH - currentCol
			tail := width - head

			c.place(&glyph, currentTile, 0, head, currentCol, pos)
			currentTile++
			tilesUsed = max(tilesUsed, currentTile)

			if currentTile < MAX_TILES_PER_STRING && tail > 0 {
				c.place(&glyph, currentTile, head, tail, 0, pos)
				currentCol = tail
			} else {
				c.truncated = c.truncated || currentTile >= MAX_TILES_PER_STRING
				currentCol = 0
			}
		}

		if pos < n-1 {
			currentCol += padding
			for currentCol >= TILE_WIDTH {
				currentTile++
				currentCol -= TILE_WIDTH
				tilesUsed = max(tilesUsed, currentTile)
				if currentTile >= MAX_TILES_PER_STRING {
					break
				}
			}
		}
	}

	// A trailing partial tile counts once; a line that ends exactly on a tile
	// edge does not open an extra one.
	count := currentTile
	if currentCol > 0 || tilesUsed == 0 {
		count = currentTile + 1
	}
	if count > MAX_TILES_PER_STRING {
		count = MAX_TILES_PER_STRING
	}
	if c.truncated {
		logger().Debug("tidytext: line truncated at tile budget",
			"chars", n, "tiles", count, "limit", MAX_TILES_PER_STRING)
	}
	return c.tiles[:count]
}

// Truncated reports whether the last Build ran out of tile budget.
func (c *Compositor) Truncated() bool {
	return c.truncated
}

// Opener returns the string position of the first character drawn into
// output tile i by the last Build, or -1 when the tile holds only padding.
func (c *Compositor) Opener(i int) int {
	if i < 0 || i >= MAX_TILES_PER_STRING {
		return -1
	}
	return c.openers[i]
}
