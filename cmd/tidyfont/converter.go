package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

// Sheet preview colours: transparent, ink, shadow, then greys for any
// other index an imported sheet carries.
var previewPalette = func() color.Palette {
	pal := color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{96, 96, 96, 255},
	}
	for i := len(pal); i < 16; i++ {
		v := uint8(i * 16)
		pal = append(pal, color.RGBA{v, v, v, 255})
	}
	return pal
}()

// Converter turns font sheets into the raw tile format and back, and
// measures proportional widths.
type Converter struct {
	columns int // Glyphs per row in PNG output
	base    tidytext.WidthTable
}

func NewConverter() *Converter {
	return &Converter{
		columns: 16,
		base:    tidytext.DefaultWidthTable(),
	}
}

// Open loads a font sheet, or a built-in font when input names one.
func (c *Converter) Open(input string) (tileset.Tileset, error) {
	if _, err := os.Stat(input); err != nil {
		for _, name := range tileset.Names() {
			if input == name {
				return tileset.ByName(name)
			}
		}
		return nil, err
	}
	return tileset.Load(input)
}

// Write stores ts at path, choosing the format by extension.
func (c *Converter) Write(path string, ts tileset.Tileset) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := png.Encode(&buf, tileset.ToImage(ts, c.columns, previewPalette)); err != nil {
			return err
		}
	case ".bin", ".raw":
		if err := tileset.Encode(&buf, ts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", tileset.ErrUnsupportedFormat, path)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WidthsSource measures ts and formats the printable entries as a Go map
// literal, eight per line.
func (c *Converter) WidthsSource(ts tileset.Tileset) string {
	wt := tileset.MeasureWidths(ts, c.base)

	var sb strings.Builder
	sb.WriteString("map[byte]uint8{\n")
	n := 0
	for code := tidytext.FONT_BASE_CODE; code <= tidytext.LAST_PRINTABLE; code++ {
		if n%8 == 0 {
			sb.WriteString("\t")
		}
		fmt.Fprintf(&sb, "%q: %d,", rune(code), wt.Width(byte(code)))
		n++
		if n%8 == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	if n%8 != 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
