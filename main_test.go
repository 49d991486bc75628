package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

func TestLoadFont_BuiltinIsMeasured(t *testing.T) {
	cfg := DefaultHostConfig()
	ts, name, widths, err := loadFont(cfg, false)
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	if name != tileset.FONT_SHORT || ts.GlyphCount() == 0 {
		t.Fatalf("font %q with %d glyphs", name, ts.GlyphCount())
	}
	if want := tileset.MeasureWidths(ts, tidytext.DefaultWidthTable()); widths != want {
		t.Fatal("built-in font widths not measured")
	}
}

func TestLoadFont_UnknownBuiltin(t *testing.T) {
	cfg := DefaultHostConfig()
	cfg.Font = "wide"
	if _, _, _, err := loadFont(cfg, false); err == nil {
		t.Fatal("unknown font accepted")
	}
}

func TestLoadFont_FileUsesStockWidthsUnlessMeasured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := tileset.Encode(f, tileset.Basic()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := DefaultHostConfig()
	cfg.FontFile = path
	_, name, widths, err := loadFont(cfg, false)
	if err != nil {
		t.Fatalf("loadFont: %v", err)
	}
	if name != path || widths != tidytext.DefaultWidthTable() {
		t.Fatal("font file without -measure should use the stock table")
	}

	ts, _, measured, err := loadFont(cfg, true)
	if err != nil {
		t.Fatalf("loadFont measure: %v", err)
	}
	if measured != tileset.MeasureWidths(ts, tidytext.DefaultWidthTable()) {
		t.Fatal("-measure did not measure the font file")
	}
}
