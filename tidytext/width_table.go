// width_table.go - Per-character visible pixel widths for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

// WidthTable maps a 7-bit character code to its visible width in pixels.
// A zero entry means "not listed" and reads back as DEFAULT_CHAR_WIDTH.
type WidthTable [MAX_CHAR_CODE + 1]uint8

// defaultWidths are the measured widths of the stock 8x8 font. Anything not
// listed is a full tile wide.
var defaultWidths = map[byte]uint8{
	' ': 2, ',': 3, '.': 2, '?': 4, ':': 2, ';': 2, '\'': 1, '"': 3,
	'`': 2, '~': 5, '!': 2, '@': 5, '#': 5, '$': 5, '%': 5, '^': 5,
	'&': 5, '*': 5, '(': 3, ')': 3, '-': 4, '=': 4, '_': 4, '+': 5,
	'|': 3, '/': 4, '\\': 4, '<': 4, '>': 4, '[': 3, ']': 3, '{': 4,
	'}': 4,

	'0': 4, '1': 3, '2': 4, '3': 4, '4': 4, '5': 4, '6': 4, '7': 4, '8': 4, '9': 4,

	'A': 4, 'B': 4, 'C': 4, 'D': 4, 'E': 4, 'F': 4, 'G': 4, 'H': 4, 'I': 3,
	'J': 4, 'K': 4, 'L': 3, 'M': 5, 'N': 4, 'O': 4, 'P': 4, 'Q': 5, 'R': 4,
	'S': 4, 'T': 5, 'U': 4, 'V': 5, 'W': 5, 'X': 4, 'Y': 5, 'Z': 4,

	'a': 4, 'b': 4, 'c': 3, 'd': 4, 'e': 4, 'f': 4, 'g': 4, 'h': 4, 'i': 3,
	'j': 3, 'k': 4, 'l': 3, 'm': 5, 'n': 4, 'o': 4, 'p': 4, 'q': 5, 'r': 3,
	's': 4, 't': 4, 'u': 4, 'v': 5, 'w': 5, 'x': 4, 'y': 4, 'z': 3,
}

// DefaultWidthTable returns a fresh copy of the stock width table.
func DefaultWidthTable() WidthTable {
	var wt WidthTable
	for code, w := range defaultWidths {
		wt[code] = w
	}
	return wt
}

// Width returns the visible width of code. Codes without an entry, and codes
// above MAX_CHAR_CODE, are DEFAULT_CHAR_WIDTH wide.
func (wt *WidthTable) Width(code byte) int {
	if code > MAX_CHAR_CODE {
		return DEFAULT_CHAR_WIDTH
	}
	if w := wt[code]; w != 0 {
		return int(w)
	}
	return DEFAULT_CHAR_WIDTH
}

// SetWidth records a width for code, clamped to [1, TILE_WIDTH]. Codes above
// MAX_CHAR_CODE are ignored.
func (wt *WidthTable) SetWidth(code byte, width int) {
	if code > MAX_CHAR_CODE {
		return
	}
	switch {
	case width < 1:
		width = 1
	case width > TILE_WIDTH:
		width = TILE_WIDTH
	}
	wt[code] = uint8(width)
}

// Clear removes the entry for code so it reads back as the default.
func (wt *WidthTable) Clear(code byte) {
	if code <= MAX_CHAR_CODE {
		wt[code] = 0
	}
}

// Listed reports whether code has an explicit entry.
func (wt *WidthTable) Listed(code byte) bool {
	return code <= MAX_CHAR_CODE && wt[code] != 0
}
