// video_compositor.go - Frame pump from video sources to the display for TidyText


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
video_compositor.go - Video Compositor

This module pumps frames from registered VideoSource devices to a
VideoOutput:
- Collects frames from every enabled source
- Composites them in layer order (higher layer on top)
- Sends the final frame to the output and to any frame observers

Signal Flow:
1. The VDP registers with the compositor
2. Compositor runs at 60Hz, or one frame at a time via Step
3. Each frame, enabled sources render and are blended by layer
4. Final frame goes to the VideoOutput and observers (terminal preview)
*/

package main

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Compositor constants
const (
	COMPOSITOR_REFRESH_RATE     = 60
	COMPOSITOR_REFRESH_INTERVAL = time.Second / COMPOSITOR_REFRESH_RATE
)

// VideoCompositor blends video sources into a single output
type VideoCompositor struct {
	mutex       sync.Mutex
	output      VideoOutput
	sources     []VideoSource
	observers   []func(frame []byte, w, h int)
	finalFrame  []byte
	done        chan struct{}
	stopOnce    sync.Once
	frameWidth  int
	frameHeight int
	frames      uint64
}

// NewVideoCompositor creates a compositor sized to the VDP screen
func NewVideoCompositor(output VideoOutput) *VideoCompositor {
	return &VideoCompositor{
		output:      output,
		done:        make(chan struct{}),
		frameWidth:  VDP_SCREEN_WIDTH,
		frameHeight: VDP_SCREEN_HEIGHT,
		finalFrame:  make([]byte, VDP_SCREEN_WIDTH*VDP_SCREEN_HEIGHT*VDP_BYTES_PER_PIXEL),
	}
}

// RegisterSource adds a video source, keeping sources sorted by layer
func (c *VideoCompositor) RegisterSource(source VideoSource) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sources = append(c.sources, source)
	slices.SortStableFunc(c.sources, func(a, b VideoSource) int {
		return a.GetLayer() - b.GetLayer()
	})
}

// Observe registers fn to receive every composited frame. The frame is only
// valid for the duration of the call.
func (c *VideoCompositor) Observe(fn func(frame []byte, w, h int)) {
	c.mutex.Lock()
	c.observers = append(c.observers, fn)
	c.mutex.Unlock()
}

// SetDimensions sets the output frame dimensions
func (c *VideoCompositor) SetDimensions(width, height int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.frameWidth = width
	c.frameHeight = height
	c.finalFrame = make([]byte, width*height*VDP_BYTES_PER_PIXEL)
}

// Start begins the compositor refresh loop
func (c *VideoCompositor) Start() error {
	go c.refreshLoop()
	return nil
}

// Stop halts the compositor refresh loop
func (c *VideoCompositor) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// Step composites exactly one frame.
func (c *VideoCompositor) Step() {
	c.composite()
}

// Frames returns the number of frames composited.
func (c *VideoCompositor) Frames() uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.frames
}

func (c *VideoCompositor) refreshLoop() {
	ticker := time.NewTicker(COMPOSITOR_REFRESH_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.composite()
		}
	}
}

// composite collects and blends frames from all enabled sources
func (c *VideoCompositor) composite() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	clear(c.finalFrame)

	hasContent := false
	for _, source := range c.sources {
		if !source.IsEnabled() {
			continue
		}
		frame := source.GetFrame()
		if frame == nil {
			continue
		}
		hasContent = true
		srcW, srcH := source.GetDimensions()
		c.blendFrame(frame, srcW, srcH)
		source.SignalVSync()
	}
	if !hasContent {
		return
	}
	c.frames++

	if c.output != nil && c.output.IsStarted() {
		if err := c.output.UpdateFrame(c.finalFrame); err != nil {
			fmt.Printf("Compositor: Error updating frame: %v\n", err)
		}
	}
	for _, fn := range c.observers {
		fn(c.finalFrame, c.frameWidth, c.frameHeight)
	}
}

// blendFrame scales a source frame into the final frame. Pixels with zero
// alpha leave the layer below visible.
func (c *VideoCompositor) blendFrame(srcFrame []byte, srcW, srcH int) {
	dstW := c.frameWidth
	dstH := c.frameHeight

	for dstY := 0; dstY < dstH; dstY++ {
		srcY := dstY * srcH / dstH
		for dstX := 0; dstX < dstW; dstX++ {
			srcX := dstX * srcW / dstW

			srcIdx := (srcY*srcW + srcX) * VDP_BYTES_PER_PIXEL
			dstIdx := (dstY*dstW + dstX) * VDP_BYTES_PER_PIXEL
			if srcIdx+3 >= len(srcFrame) || dstIdx+3 >= len(c.finalFrame) {
				continue
			}
			if srcFrame[srcIdx+3] > 0 {
				copy(c.finalFrame[dstIdx:dstIdx+4], srcFrame[srcIdx:srcIdx+4])
			}
		}
	}
}
