// terminal_io.go - Raw keystroke line editor for TidyText


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
terminal_io.go - Terminal Line Editor

LineEditor turns the raw keystrokes delivered by TerminalHost into whole
lines for the renderer.

Key Handling:
  printable / 0x80-0xFF  appended to the line (echoed)
  '\n'                   line completed, delivered to the OnLine callback
  0x08                   deletes the last character (a whole UTF-8 rune)
  Ctrl+U                 clears the line
  Ctrl+C, Ctrl+D         OnQuit callback
  ESC [ ... final        cursor and function key sequences are swallowed
*/

package main

import (
	"sync"
	"unicode/utf8"

	"github.com/intuitionamiga/TidyText/tidytext"
)

const (
	TERM_LINE_MAX = tidytext.MAX_FORMATTED_LEN

	KEY_CTRL_C = 0x03
	KEY_CTRL_D = 0x04
	KEY_BS     = 0x08
	KEY_CTRL_U = 0x15
	KEY_ESC    = 0x1B
)

const (
	escIdle = iota
	escStart
	escCSI
)

type LineEditor struct {
	mu sync.Mutex

	line      []byte
	outputBuf []byte
	escState  int

	onLine func(string)
	onQuit func()
}

func NewLineEditor() *LineEditor {
	return &LineEditor{
		line:      make([]byte, 0, TERM_LINE_MAX),
		outputBuf: make([]byte, 0, 256),
	}
}

// OnLine sets the callback receiving each completed line.
func (le *LineEditor) OnLine(fn func(string)) {
	le.mu.Lock()
	le.onLine = fn
	le.mu.Unlock()
}

// OnQuit sets the callback for Ctrl+C and Ctrl+D.
func (le *LineEditor) OnQuit(fn func()) {
	le.mu.Lock()
	le.onQuit = fn
	le.mu.Unlock()
}

// RouteHostKey feeds one byte from the host keyboard. Callbacks run after
// the editor lock is released.
func (le *LineEditor) RouteHostKey(b byte) {
	var (
		lineCB func(string)
		quitCB func()
		line   string
	)

	le.mu.Lock()
	switch le.escState {
	case escStart:
		if b == '[' || b == 'O' {
			le.escState = escCSI
		} else {
			le.escState = escIdle
		}
		le.mu.Unlock()
		return
	case escCSI:
		if b >= 0x40 && b <= 0x7E {
			le.escState = escIdle
		}
		le.mu.Unlock()
		return
	}

	switch {
	case b == '\n':
		line = string(le.line)
		le.line = le.line[:0]
		le.outputBuf = append(le.outputBuf, '\r', '\n')
		lineCB = le.onLine
	case b == KEY_BS:
		if len(le.line) > 0 {
			_, size := utf8.DecodeLastRune(le.line)
			le.line = le.line[:len(le.line)-size]
			le.outputBuf = append(le.outputBuf, '\b', ' ', '\b')
		}
	case b == KEY_CTRL_U:
		le.line = le.line[:0]
		le.outputBuf = append(le.outputBuf, "\r\x1b[K"...)
	case b == KEY_CTRL_C || b == KEY_CTRL_D:
		quitCB = le.onQuit
	case b == KEY_ESC:
		le.escState = escStart
	case b < 0x20 || b == 0x7F:
		// other control bytes are ignored
	default:
		if len(le.line) < TERM_LINE_MAX {
			le.line = append(le.line, b)
			le.outputBuf = append(le.outputBuf, b)
		}
	}
	le.mu.Unlock()

	if lineCB != nil {
		lineCB(line)
	}
	if quitCB != nil {
		quitCB()
	}
}

// Pending returns the line being edited.
func (le *LineEditor) Pending() string {
	le.mu.Lock()
	defer le.mu.Unlock()
	return string(le.line)
}

// DrainOutput returns and clears the echo buffer.
func (le *LineEditor) DrainOutput() string {
	le.mu.Lock()
	defer le.mu.Unlock()
	out := string(le.outputBuf)
	le.outputBuf = le.outputBuf[:0]
	return out
}

// translateHostKey maps raw-mode Enter (CR) and Backspace (DEL) onto the
// editor's codes.
func translateHostKey(b byte) byte {
	switch b {
	case '\r':
		return '\n'
	case 0x7F:
		return KEY_BS
	}
	return b
}
