// terminal_output.go - ANSI half-block frame preview for TidyText


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

/*
terminal_output.go - Terminal Frame Preview

Prints an RGBA frame to a 24-bit colour terminal. Each character cell
shows two pixel rows with the upper half block: foreground is the top
pixel, background the bottom one. Frames wider than the terminal are
sampled down to fit.
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

const (
	TERM_DEFAULT_COLUMNS = 80
	TERM_HALF_BLOCK      = "▀"
	TERM_RESET           = "\x1b[0m"
)

type TerminalPreview struct {
	out     io.Writer
	fd      int
	columns int // 0 asks the terminal
}

// NewTerminalPreview writes to out, sizing from the terminal on fd when it
// is one.
func NewTerminalPreview(out io.Writer, fd int) *TerminalPreview {
	return &TerminalPreview{out: out, fd: fd}
}

// SetColumns fixes the preview width, bypassing terminal detection.
func (p *TerminalPreview) SetColumns(columns int) {
	p.columns = columns
}

// Columns returns the number of character columns available.
func (p *TerminalPreview) Columns() int {
	if p.columns > 0 {
		return p.columns
	}
	if term.IsTerminal(p.fd) {
		if w, _, err := term.GetSize(p.fd); err == nil && w > 0 {
			return w
		}
	}
	return TERM_DEFAULT_COLUMNS
}

// Render formats frame (w x h RGBA) as ANSI text.
func (p *TerminalPreview) Render(frame []byte, w, h int) string {
	if w <= 0 || h <= 0 || len(frame) < w*h*VDP_BYTES_PER_PIXEL {
		return ""
	}
	step := (w + p.Columns() - 1) / p.Columns()
	step = max(step, 1)

	pixel := func(x, y int) (r, g, b byte) {
		i := (y*w + x) * VDP_BYTES_PER_PIXEL
		return frame[i], frame[i+1], frame[i+2]
	}

	var sb strings.Builder
	for y := 0; y < h; y += 2 * step {
		for x := 0; x < w; x += step {
			tr, tg, tb := pixel(x, y)
			br, bg, bb := tr, tg, tb
			if y+step < h {
				br, bg, bb = pixel(x, y+step)
			}
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, TERM_HALF_BLOCK)
		}
		// CRLF keeps rows aligned when stdin holds the terminal in raw mode
		sb.WriteString(TERM_RESET + "\r\n")
	}
	return sb.String()
}

// Show renders frame and writes it out. It has the compositor observer
// signature.
func (p *TerminalPreview) Show(frame []byte, w, h int) {
	fmt.Fprint(p.out, p.Render(frame, w, h))
}
