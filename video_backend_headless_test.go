// video_backend_headless_test.go - Tests for the windowless video output

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package main

import (
	"errors"
	"testing"
)

func TestHeadlessOutput_SetDisplayConfig_StoresFullscreen(t *testing.T) {
	out := &HeadlessVideoOutput{}
	cfg := DisplayConfig{
		Width:      VDP_SCREEN_WIDTH,
		Height:     VDP_SCREEN_HEIGHT,
		Scale:      2,
		Fullscreen: true,
	}
	if err := out.SetDisplayConfig(cfg); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	got := out.GetDisplayConfig()
	if got.Scale != 2 || !got.Fullscreen {
		t.Fatalf("expected Scale=2, Fullscreen=true; got Scale=%d, Fullscreen=%v", got.Scale, got.Fullscreen)
	}
}

func TestHeadlessOutput_ScaleClamped(t *testing.T) {
	out := NewHeadlessOutput()
	for _, tc := range []struct{ in, want int }{{0, MIN_SCALE}, {-3, MIN_SCALE}, {4, 4}, {99, MAX_SCALE}} {
		if err := out.SetDisplayConfig(DisplayConfig{Scale: tc.in}); err != nil {
			t.Fatalf("SetDisplayConfig: %v", err)
		}
		if got := out.GetDisplayConfig().Scale; got != tc.want {
			t.Errorf("scale %d clamped to %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHeadlessOutput_SnapshotNeedsFrame(t *testing.T) {
	out := NewHeadlessOutput()
	_, err := out.GetSnapshot()
	var verr *VideoError
	if !errors.As(err, &verr) {
		t.Fatalf("GetSnapshot error = %v, want *VideoError", err)
	}

	frame := []byte{1, 2, 3, 4}
	if err := out.UpdateFrame(frame); err != nil {
		t.Fatalf("UpdateFrame: %v", err)
	}
	frame[0] = 99
	snap, err := out.GetSnapshot()
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.Buffer[0] != 1 {
		t.Fatal("snapshot aliases the caller's frame")
	}
	if out.GetFrameCount() != 1 {
		t.Fatalf("frame count = %d, want 1", out.GetFrameCount())
	}
}

func TestHeadlessOutput_StartStop(t *testing.T) {
	out := NewHeadlessOutput()
	if out.IsStarted() {
		t.Fatal("new output reports started")
	}
	_ = out.Start()
	if !out.IsStarted() {
		t.Fatal("Start did not start")
	}
	_ = out.Close()
	if out.IsStarted() {
		t.Fatal("Close did not stop")
	}
}

func TestHeadlessOutput_Paste(t *testing.T) {
	var _ InputCapable = (*HeadlessVideoOutput)(nil)

	out := NewHeadlessOutput()
	out.Paste("ignored")

	var got string
	out.SetPasteHandler(func(s string) { got = s })
	out.Paste("hello")
	if got != "hello" {
		t.Fatalf("paste handler got %q", got)
	}
}
