// config_test.go - Tests for host configuration

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/TidyText

License: GPLv3 or later
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestHostConfig_Defaults(t *testing.T) {
	cfg := DefaultHostConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Font != tileset.FONT_SHORT || cfg.HighBoundary != tidytext.DEFAULT_HIGH_BOUNDARY {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestHostConfig_ApplyEnv(t *testing.T) {
	cfg := DefaultHostConfig()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		"TIDYTEXT_FONT":           "tall",
		"TIDYTEXT_SCRIPT":         "scene.lua",
		"TIDYTEXT_SCALE":          "3",
		"TIDYTEXT_ERASE_ON_RESET": "true",
		"TIDYTEXT_TILE_BOUNDARY":  "0x500",
		"TIDYTEXT_LOW_BOUNDARY":   "128",
		"TIDYTEXT_PADDING":        "2",
		"TIDYTEXT_FONT_FILE":      "",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Font != "tall" || cfg.Script != "scene.lua" || cfg.Scale != 3 || !cfg.EraseOnReset {
		t.Fatalf("string/bool settings not applied: %+v", cfg)
	}
	if cfg.HighBoundary != 0x500 || cfg.LowBoundary != 128 || cfg.Padding != 2 {
		t.Fatalf("numeric settings not applied: %+v", cfg)
	}
	if cfg.FontFile != "" {
		t.Fatal("empty variable should leave the setting alone")
	}
}

func TestHostConfig_ApplyEnvRejectsBadValues(t *testing.T) {
	for name, value := range map[string]string{
		"TIDYTEXT_SCALE":          "big",
		"TIDYTEXT_PADDING":        "1.5",
		"TIDYTEXT_ERASE_ON_RESET": "maybe",
	} {
		cfg := DefaultHostConfig()
		if err := cfg.ApplyEnv(mapLookup(map[string]string{name: value})); err == nil {
			t.Errorf("%s=%q accepted", name, value)
		}
	}
}

func TestHostConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*HostConfig)
	}{
		{"zero boundary", func(c *HostConfig) { c.HighBoundary = 0 }},
		{"boundary past VRAM", func(c *HostConfig) { c.HighBoundary = VDP_VRAM_TILES + 1 }},
		{"boundary over system font", func(c *HostConfig) { c.HighBoundary = TILE_FONT_INDEX }},
		{"boundary over paste tiles", func(c *HostConfig) { c.HighBoundary = PASTE_TILE_BASE + 1 }},
		{"low above high", func(c *HostConfig) { c.LowBoundary = c.HighBoundary }},
		{"negative low", func(c *HostConfig) { c.LowBoundary = -1 }},
		{"padding too wide", func(c *HostConfig) { c.Padding = tidytext.TILE_WIDTH + 1 }},
	}
	for _, tc := range cases {
		cfg := DefaultHostConfig()
		tc.mod(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestHostConfig_ValidateBoundaryCeiling(t *testing.T) {
	cfg := DefaultHostConfig()
	cfg.HighBoundary = PASTE_TILE_BASE
	if err := cfg.Validate(); err != nil {
		t.Fatalf("boundary at the paste tiles rejected: %v", err)
	}
}

func TestHostConfig_RendererConfig(t *testing.T) {
	cfg := DefaultHostConfig()
	cfg.Padding = 0
	cfg.EraseOnReset = true
	widths := tidytext.DefaultWidthTable()

	rc := cfg.RendererConfig(&widths)
	if rc.Padding != 0 || !rc.EraseOnReset || rc.Widths != &widths {
		t.Fatalf("RendererConfig = %+v", rc)
	}
	if rc.HighBoundary != cfg.HighBoundary || rc.LowBoundary != cfg.LowBoundary {
		t.Fatal("boundaries not carried over")
	}
}

func TestReadEnvFiles_LocalOverridesShared(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(".env", "TIDYTEXT_TEST_FONT=tall\nTIDYTEXT_TEST_PADDING=2\n")
	write(".env.local", "TIDYTEXT_TEST_FONT=short\n")

	env, err := readEnvFiles(dir)
	if err != nil {
		t.Fatalf("readEnvFiles: %v", err)
	}
	if len(env.Found) != 2 {
		t.Fatalf("Found = %v", env.Found)
	}
	if v, _ := env.lookup("TIDYTEXT_TEST_FONT"); v != "short" {
		t.Fatalf("TIDYTEXT_TEST_FONT = %q, want .env.local value", v)
	}
	if v, _ := env.lookup("TIDYTEXT_TEST_PADDING"); v != "2" {
		t.Fatalf("TIDYTEXT_TEST_PADDING = %q", v)
	}
	if _, ok := os.LookupEnv("TIDYTEXT_TEST_FONT"); ok {
		t.Fatal("readEnvFiles modified the process environment")
	}

	t.Setenv("TIDYTEXT_TEST_FONT", "process")
	if v, _ := env.lookup("TIDYTEXT_TEST_FONT"); v != "process" {
		t.Fatalf("process environment should win, got %q", v)
	}
}

func TestReadEnvFiles_MissingFilesSkipped(t *testing.T) {
	env, err := readEnvFiles(t.TempDir())
	if err != nil {
		t.Fatalf("readEnvFiles: %v", err)
	}
	if len(env.Found) != 0 {
		t.Fatalf("Found = %v", env.Found)
	}
	if _, ok := env.lookup("TIDYTEXT_TEST_UNSET"); ok {
		t.Fatal("lookup found an unset variable")
	}
}
