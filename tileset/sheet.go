// sheet.go - Font sheet loading from raw, PNG and BMP files for TidyText

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package tileset

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/intuitionamiga/TidyText/tidytext"
	"golang.org/x/image/bmp"
)

// Load reads a font asset, picking the codec from the file extension.
func Load(path string) (Tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := Read(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ts, nil
}

// Read decodes a font asset of the given format (".bin", ".png" or ".bmp").
func Read(r io.Reader, ext string) (Tileset, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(ext) {
	case ".bin", ".raw":
		return Decode(r)
	case ".png":
		img, err = png.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// FromImage cuts a sheet into 8x8 cells, left to right then top to bottom.
// Paletted sheets keep their colour indices (low 4 bits). Anything else is
// thresholded: opaque light pixels become index 1.
func FromImage(img image.Image) (Tileset, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%tidytext.TILE_WIDTH != 0 || b.Dy()%tidytext.TILE_HEIGHT != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSheetSize, b.Dx(), b.Dy())
	}

	index := func(x, y int) uint8 {
		c := img.At(x, y)
		g := color.GrayModel.Convert(c).(color.Gray)
		_, _, _, a := c.RGBA()
		if a >= 0x8000 && g.Y >= INK_THRESHOLD {
			return tidytext.SOURCE_INDEX_PRIMARY
		}
		return tidytext.SOURCE_INDEX_BACKGROUND
	}
	if p, ok := img.(*image.Paletted); ok {
		index = func(x, y int) uint8 {
			return p.ColorIndexAt(x, y) & tidytext.PIXEL_MASK
		}
	}

	cols := b.Dx() / tidytext.TILE_WIDTH
	rows := b.Dy() / tidytext.TILE_HEIGHT
	ts := make(Tileset, 0, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var t tidytext.Tile
			x0 := b.Min.X + cx*tidytext.TILE_WIDTH
			y0 := b.Min.Y + cy*tidytext.TILE_HEIGHT
			for row := 0; row < tidytext.TILE_HEIGHT; row++ {
				for col := 0; col < tidytext.TILE_WIDTH; col++ {
					t.SetPixel(col, row, index(x0+col, y0+row))
				}
			}
			ts = append(ts, t)
		}
	}
	return ts, nil
}

// ToImage lays ts out as a paletted sheet cols cells wide, the inverse of
// FromImage for paletted input.
func ToImage(ts Tileset, cols int, pal color.Palette) *image.Paletted {
	if cols <= 0 {
		cols = 16
	}
	rows := (len(ts) + cols - 1) / cols
	img := image.NewPaletted(image.Rect(0, 0, cols*tidytext.TILE_WIDTH, rows*tidytext.TILE_HEIGHT), pal)
	for i := range ts {
		x0 := (i % cols) * tidytext.TILE_WIDTH
		y0 := (i / cols) * tidytext.TILE_HEIGHT
		for row := 0; row < tidytext.TILE_HEIGHT; row++ {
			for col := 0; col < tidytext.TILE_WIDTH; col++ {
				img.SetColorIndex(x0+col, y0+row, ts[i].PixelAt(col, row))
			}
		}
	}
	return img
}
