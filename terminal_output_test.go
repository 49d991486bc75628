// terminal_output_test.go - Tests for the ANSI frame preview

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package main

import (
	"bytes"
	"strings"
	"testing"
)

func rgbaFrame(w, h int, px func(x, y int) [3]byte) []byte {
	frame := make([]byte, w*h*VDP_BYTES_PER_PIXEL)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := px(x, y)
			i := (y*w + x) * VDP_BYTES_PER_PIXEL
			frame[i], frame[i+1], frame[i+2], frame[i+3] = c[0], c[1], c[2], 255
		}
	}
	return frame
}

func TestTerminalPreview_HalfBlocks(t *testing.T) {
	colours := [2][2][3]byte{
		{{255, 0, 0}, {0, 255, 0}},
		{{0, 0, 255}, {255, 255, 255}},
	}
	frame := rgbaFrame(2, 2, func(x, y int) [3]byte { return colours[y][x] })

	p := NewTerminalPreview(nil, -1)
	p.SetColumns(80)
	want := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m" + TERM_HALF_BLOCK +
		"\x1b[38;2;0;255;0m\x1b[48;2;255;255;255m" + TERM_HALF_BLOCK +
		TERM_RESET + "\r\n"
	if got := p.Render(frame, 2, 2); got != want {
		t.Fatalf("Render = %q\nwant     %q", got, want)
	}
}

func TestTerminalPreview_OddHeightRepeatsLastRow(t *testing.T) {
	frame := rgbaFrame(1, 1, func(int, int) [3]byte { return [3]byte{1, 2, 3} })
	p := NewTerminalPreview(nil, -1)
	p.SetColumns(10)
	if got := p.Render(frame, 1, 1); !strings.HasPrefix(got, "\x1b[38;2;1;2;3m\x1b[48;2;1;2;3m") {
		t.Fatalf("Render = %q", got)
	}
}

func TestTerminalPreview_DownsamplesToColumns(t *testing.T) {
	frame := rgbaFrame(VDP_SCREEN_WIDTH, VDP_SCREEN_HEIGHT, func(int, int) [3]byte { return [3]byte{} })
	p := NewTerminalPreview(nil, -1)
	p.SetColumns(80)

	out := p.Render(frame, VDP_SCREEN_WIDTH, VDP_SCREEN_HEIGHT)
	rows := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if len(rows) != VDP_SCREEN_HEIGHT/8 {
		t.Fatalf("rows = %d, want %d", len(rows), VDP_SCREEN_HEIGHT/8)
	}
	if n := strings.Count(rows[0], TERM_HALF_BLOCK); n != 80 {
		t.Fatalf("cells per row = %d, want 80", n)
	}
}

func TestTerminalPreview_BadInput(t *testing.T) {
	p := NewTerminalPreview(nil, -1)
	if p.Render(nil, 2, 2) != "" || p.Render(make([]byte, 16), 0, 2) != "" {
		t.Fatal("bad input should render nothing")
	}
}

func TestTerminalPreview_ShowWrites(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPreview(&buf, -1)
	p.SetColumns(4)
	p.Show(rgbaFrame(2, 2, func(int, int) [3]byte { return [3]byte{9, 9, 9} }), 2, 2)
	if !strings.HasSuffix(buf.String(), TERM_RESET+"\r\n") {
		t.Fatalf("Show wrote %q", buf.String())
	}
}

func TestTerminalPreview_DefaultColumns(t *testing.T) {
	p := NewTerminalPreview(nil, -1)
	if p.Columns() != TERM_DEFAULT_COLUMNS {
		t.Fatalf("Columns = %d, want %d", p.Columns(), TERM_DEFAULT_COLUMNS)
	}
}
