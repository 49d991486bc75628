// encoding.go - UTF-8 to 8-bit character code folding for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tidytext

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// LineEncoder folds UTF-8 text into the single-byte character codes the
// width table and font asset are indexed by. Runes outside ISO 8859-1 are
// replaced, so they come out as a blank default-width cell.
type LineEncoder struct {
	enc *encoding.Encoder
}

// NewLineEncoder creates an ISO 8859-1 encoder with replacement.
func NewLineEncoder() *LineEncoder {
	return &LineEncoder{
		enc: encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()),
	}
}

// Encode writes the codes for s into dst and returns the filled prefix.
// Input that does not fit in dst is dropped.
func (le *LineEncoder) Encode(dst []byte, s string) []byte {
	if len(s) == 0 || len(dst) == 0 {
		return dst[:0]
	}
	le.enc.Reset()
	n, _, _ := le.enc.Transform(dst, []byte(s), true)
	return dst[:n]
}
