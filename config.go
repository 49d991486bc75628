// config.go - Host configuration from flags and .env files for TidyText


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
config.go - Host Configuration

Settings come from three layers, later layers winning:
  1. built-in defaults
  2. TIDYTEXT_* variables, from the process environment or from
     .env.local / .env in the working directory (process environment
     first, then .env.local, then .env)
  3. command line flags

Variables:
  TIDYTEXT_FONT            built-in font name (short, tall)
  TIDYTEXT_FONT_FILE       .bin/.png/.bmp font sheet, overrides TIDYTEXT_FONT
  TIDYTEXT_SCRIPT          Lua scene to run instead of the demo
  TIDYTEXT_SCALE           window scale factor
  TIDYTEXT_ERASE_ON_RESET  blank used tiles on reset (true/false)
  TIDYTEXT_TILE_BOUNDARY   first VRAM slot above the text region
  TIDYTEXT_LOW_BOUNDARY    text budget floor
  TIDYTEXT_PADDING         blank columns between characters
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
	"github.com/joho/godotenv"
)

var envFiles = []string{".env.local", ".env"}

type HostConfig struct {
	Font         string
	FontFile     string
	Script       string
	Scale        int
	EraseOnReset bool
	HighBoundary int
	LowBoundary  int
	Padding      int

	Term     bool
	Headless bool
	Frames   int
	Verbose  bool
}

func DefaultHostConfig() HostConfig {
	return HostConfig{
		Font:         tileset.FONT_SHORT,
		Scale:        2,
		HighBoundary: tidytext.DEFAULT_HIGH_BOUNDARY,
		LowBoundary:  tidytext.DEFAULT_LOW_BOUNDARY,
		Padding:      tidytext.DEFAULT_CHARACTER_PADDING,
		Frames:       1,
	}
}

// envLookup resolves TIDYTEXT_* names from the process environment, then
// the .env files found in dir.
type envLookup struct {
	files map[string]string
	Found []string
}

// readEnvFiles reads .env.local and .env from dir without touching the
// process environment. Missing files are skipped.
func readEnvFiles(dir string) (*envLookup, error) {
	env := &envLookup{files: make(map[string]string)}
	for i := len(envFiles) - 1; i >= 0; i-- {
		path := filepath.Join(dir, envFiles[i])
		vars, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		for k, v := range vars {
			env.files[k] = v
		}
		env.Found = append(env.Found, path)
	}
	return env, nil
}

func (e *envLookup) lookup(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	if e == nil {
		return "", false
	}
	v, ok := e.files[name]
	return v, ok
}

// ApplyEnv overlays TIDYTEXT_* variables onto c.
func (c *HostConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.ParseInt(v, 0, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
		*dst = int(n)
		return nil
	}

	str("TIDYTEXT_FONT", &c.Font)
	str("TIDYTEXT_FONT_FILE", &c.FontFile)
	str("TIDYTEXT_SCRIPT", &c.Script)
	if v, ok := lookup("TIDYTEXT_ERASE_ON_RESET"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: TIDYTEXT_ERASE_ON_RESET: %w", err)
		}
		c.EraseOnReset = b
	}
	for name, dst := range map[string]*int{
		"TIDYTEXT_SCALE":         &c.Scale,
		"TIDYTEXT_TILE_BOUNDARY": &c.HighBoundary,
		"TIDYTEXT_LOW_BOUNDARY":  &c.LowBoundary,
		"TIDYTEXT_PADDING":       &c.Padding,
	} {
		if err := num(name, dst); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects settings the renderer or VDP cannot honour.
func (c HostConfig) Validate() error {
	if c.HighBoundary <= 0 || c.HighBoundary > PASTE_TILE_BASE {
		return fmt.Errorf("config: tile boundary %d outside 1..%d", c.HighBoundary, PASTE_TILE_BASE)
	}
	if c.LowBoundary < 0 || c.LowBoundary >= c.HighBoundary {
		return fmt.Errorf("config: low boundary %d must be below tile boundary %d", c.LowBoundary, c.HighBoundary)
	}
	if c.Padding < 0 || c.Padding > tidytext.TILE_WIDTH {
		return fmt.Errorf("config: padding %d outside 0..%d", c.Padding, tidytext.TILE_WIDTH)
	}
	return nil
}

// RendererConfig converts the host settings into renderer settings.
func (c HostConfig) RendererConfig(widths *tidytext.WidthTable) tidytext.Config {
	cfg := tidytext.DefaultConfig()
	cfg.Padding = c.Padding
	cfg.HighBoundary = c.HighBoundary
	cfg.LowBoundary = c.LowBoundary
	cfg.EraseOnReset = c.EraseOnReset
	cfg.Widths = widths
	return cfg
}
