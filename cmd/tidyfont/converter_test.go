package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/TidyText/tileset"
)

func TestConverter_OpenBuiltin(t *testing.T) {
	c := NewConverter()
	ts, err := c.Open("tall")
	if err != nil {
		t.Fatalf("Open(tall): %v", err)
	}
	if ts.GlyphCount() != len(tileset.BasicTall()) {
		t.Fatalf("glyphs = %d", ts.GlyphCount())
	}
	if _, err := c.Open("no-such-font"); err == nil {
		t.Fatal("unknown input accepted")
	}
}

func TestConverter_WriteRoundTrip(t *testing.T) {
	c := NewConverter()
	ts := tileset.Basic()
	dir := t.TempDir()

	for _, name := range []string{"font.bin", "font.png"} {
		path := filepath.Join(dir, name)
		if err := c.Write(path, ts); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
		back, err := c.Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", name, err)
		}
		for i := range ts {
			if back.GlyphAt(i) != ts[i] {
				t.Fatalf("%s: glyph %d changed", name, i)
			}
		}
	}
}

func TestConverter_WriteRejectsUnknownExtension(t *testing.T) {
	c := NewConverter()
	err := c.Write(filepath.Join(t.TempDir(), "font.gif"), tileset.Basic())
	if !errors.Is(err, tileset.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestConverter_WidthsSource(t *testing.T) {
	c := NewConverter()
	src := c.WidthsSource(tileset.Basic())
	if !strings.HasPrefix(src, "map[byte]uint8{\n") || !strings.HasSuffix(src, "}\n") {
		t.Fatalf("unexpected framing:\n%s", src)
	}
	if !strings.Contains(src, "'A': ") || !strings.Contains(src, "'~': ") {
		t.Fatal("printable range missing")
	}
	if n := strings.Count(src, ": "); n != 95 {
		t.Fatalf("entries = %d, want 95", n)
	}
}
