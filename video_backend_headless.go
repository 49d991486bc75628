// video_backend_headless.go - Windowless video output for TidyText


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

package main

import (
	"sync"
	"sync/atomic"
	"time"
)

// HeadlessVideoOutput counts frames and keeps the most recent one so
// headless runs can preview or dump it.
type HeadlessVideoOutput struct {
	mutex       sync.RWMutex
	started     bool
	config      DisplayConfig
	frameCount  uint64
	refreshRate int
	lastFrame   []byte
	pasteFn     func(string)
}

func NewHeadlessOutput() *HeadlessVideoOutput {
	return &HeadlessVideoOutput{
		refreshRate: COMPOSITOR_REFRESH_RATE,
		config: DisplayConfig{
			Width:       VDP_SCREEN_WIDTH,
			Height:      VDP_SCREEN_HEIGHT,
			Scale:       1,
			RefreshRate: COMPOSITOR_REFRESH_RATE,
		},
	}
}

func (h *HeadlessVideoOutput) Start() error {
	h.mutex.Lock()
	h.started = true
	h.mutex.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.mutex.Lock()
	h.started = false
	h.mutex.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.started
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	h.mutex.Lock()
	config.Scale = ClampScale(config.Scale)
	h.config = config
	h.mutex.Unlock()
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.config
}

func (h *HeadlessVideoOutput) UpdateFrame(buffer []byte) error {
	h.mutex.Lock()
	h.lastFrame = append(h.lastFrame[:0], buffer...)
	h.mutex.Unlock()
	atomic.AddUint64(&h.frameCount, 1)
	return nil
}

func (h *HeadlessVideoOutput) WaitForVSync() error {
	return nil
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return atomic.LoadUint64(&h.frameCount)
}

func (h *HeadlessVideoOutput) GetRefreshRate() int {
	if h.refreshRate == 0 {
		return COMPOSITOR_REFRESH_RATE
	}
	return h.refreshRate
}

// GetSnapshot returns a copy of the last frame received.
func (h *HeadlessVideoOutput) GetSnapshot() (FrameSnapshot, error) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.lastFrame == nil {
		return FrameSnapshot{}, &VideoError{Operation: "snapshot", Details: "no frame received"}
	}
	return FrameSnapshot{
		Buffer:    append([]byte(nil), h.lastFrame...),
		Width:     h.config.Width,
		Height:    h.config.Height,
		Timestamp: time.Now(),
	}, nil
}

func (h *HeadlessVideoOutput) SetPasteHandler(fn func(string)) {
	h.mutex.Lock()
	h.pasteFn = fn
	h.mutex.Unlock()
}

// Paste delivers text as if it had come from the clipboard.
func (h *HeadlessVideoOutput) Paste(text string) {
	h.mutex.RLock()
	fn := h.pasteFn
	h.mutex.RUnlock()
	if fn != nil {
		fn(text)
	}
}
