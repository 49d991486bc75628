// main.go - TidyText demo host


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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/intuitionamiga/TidyText/tidytext"
	"github.com/intuitionamiga/TidyText/tileset"
	"golang.org/x/term"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m▄▄▄█████▓ ██▓▓█████▄▓██   ██▓▄▄▄█████▓▓█████ ▒██   ██▒▄▄▄█████▓\033[0m\n\033[38;2;255;80;147m▓  ██▒ ▓▒▓██▒▒██▀ ██▌▒██  ██▒▓  ██▒ ▓▒▓█   ▀ ▒▒ █ █ ▒░▓  ██▒ ▓▒\033[0m\n\033[38;2;255;140;147m▒ ▓██░ ▒░▒██▒░██   █▌ ▒██ ██░▒ ▓██░ ▒░▒███   ░░  █   ░▒ ▓██░ ▒░\033[0m\n\033[38;2;255;200;147m░ ▓██▓ ░ ░██░░▓█▄   ▌ ░ ▐██▓░░ ▓██▓ ░ ▒▓█  ▄  ░ █ █ ▒ ░ ▓██▓ ░\033[0m\n\033[38;2;255;255;147m  ▒██▒ ░ ░██░░▒████▓  ░ ██▒▓░  ▒██▒ ░ ░▒████▒▒██▒ ▒██▒  ▒██▒ ░\033[0m")
	fmt.Println("\nProportional text for 8x8 tile displays.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/TidyText")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	cfg := DefaultHostConfig()
	env, err := readEnvFiles(".")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(env.lookup); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var measure, features bool
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&cfg.Font, "font", cfg.Font, "Built-in font: short or tall")
	flagSet.StringVar(&cfg.FontFile, "font-file", cfg.FontFile, "Font sheet (.bin, .png or .bmp)")
	flagSet.BoolVar(&measure, "measure", false, "Measure glyph widths from a font file instead of using the stock table")
	flagSet.StringVar(&cfg.Script, "script", cfg.Script, "Lua scene to run instead of the demo")
	flagSet.BoolVar(&cfg.Term, "term", false, "Preview in the terminal instead of a window")
	flagSet.BoolVar(&cfg.Headless, "headless", false, "Render without a window")
	flagSet.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor")
	flagSet.BoolVar(&cfg.EraseOnReset, "erase-on-reset", cfg.EraseOnReset, "Blank used text tiles on reset")
	flagSet.IntVar(&cfg.HighBoundary, "boundary", cfg.HighBoundary, "First VRAM tile above the text region")
	flagSet.IntVar(&cfg.LowBoundary, "low-boundary", cfg.LowBoundary, "Lowest VRAM tile the text region should use")
	flagSet.IntVar(&cfg.Padding, "padding", cfg.Padding, "Blank pixel columns between characters")
	flagSet.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to render in headless mode")
	flagSet.BoolVar(&cfg.Verbose, "verbose", false, "Log renderer diagnostics to stderr")
	flagSet.BoolVar(&features, "features", false, "List compiled features and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./tidytext [-font short|tall] [-font-file sheet.png] [-script scene.lua] [-term] [-headless]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if features {
		printFeatures()
		os.Exit(0)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Term {
		boilerPlate()
	}
	if cfg.Verbose {
		tidytext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		for _, path := range env.Found {
			fmt.Fprintf(os.Stderr, "config: loaded %s\n", path)
		}
	}

	font, fontName, widths, err := loadFont(cfg, measure)
	if err != nil {
		fmt.Printf("Error loading font: %v\n", err)
		os.Exit(1)
	}

	vdp := NewTilePlaneVDP()
	host := NewTextHost(vdp, font, cfg.RendererConfig(&widths))

	sceneName := DEMO_SCENE_NAME
	if cfg.Script != "" {
		sceneName = cfg.Script
	}
	runtimeStatus.setSource(fontName, sceneName)

	scene := NewSceneRunner(host, vdp)
	defer scene.Close()
	if cfg.Script != "" {
		err = scene.RunFile(cfg.Script)
	} else {
		err = scene.RunDemo()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbose {
		snap := runtimeStatus.snapshot()
		fmt.Fprintf(os.Stderr, "tiles: %s\nlines: %s\n", snap.tileLine(), snap.lineLine())
	}

	switch {
	case cfg.Term:
		runTerminal(cfg, vdp, host)
	case cfg.Headless:
		runHeadless(cfg, vdp)
	default:
		runWindow(cfg, vdp, host)
	}
}

// loadFont resolves the font and its width table. Built-in fonts are
// measured from their bitmaps; font files use the stock table unless
// measure is set.
func loadFont(cfg HostConfig, measure bool) (tileset.Tileset, string, tidytext.WidthTable, error) {
	stock := tidytext.DefaultWidthTable()
	if cfg.FontFile != "" {
		ts, err := tileset.Load(cfg.FontFile)
		if err != nil {
			return nil, "", stock, err
		}
		if measure {
			return ts, cfg.FontFile, tileset.MeasureWidths(ts, stock), nil
		}
		return ts, cfg.FontFile, stock, nil
	}
	ts, err := tileset.ByName(cfg.Font)
	if err != nil {
		return nil, "", stock, err
	}
	return ts, cfg.Font, tileset.MeasureWidths(ts, stock), nil
}

func newCompositor(backend int, cfg HostConfig, vdp *TilePlaneVDP) (VideoOutput, *VideoCompositor) {
	output, err := NewVideoOutput(backend)
	if err != nil {
		fmt.Printf("Failed to initialize video: %v\n", err)
		os.Exit(1)
	}
	if err := output.SetDisplayConfig(DisplayConfig{
		Width:       VDP_SCREEN_WIDTH,
		Height:      VDP_SCREEN_HEIGHT,
		Scale:       cfg.Scale,
		RefreshRate: COMPOSITOR_REFRESH_RATE,
		VSync:       true,
	}); err != nil {
		fmt.Printf("Failed to configure video: %v\n", err)
		os.Exit(1)
	}
	compositor := NewVideoCompositor(output)
	compositor.RegisterSource(vdp)
	return output, compositor
}

func runHeadless(cfg HostConfig, vdp *TilePlaneVDP) {
	output, compositor := newCompositor(VIDEO_BACKEND_HEADLESS, cfg, vdp)
	if err := output.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}
	defer output.Close()
	for range max(cfg.Frames, 1) {
		compositor.Step()
	}
	fmt.Printf("Rendered %d frames\n", output.GetFrameCount())
}

func runWindow(cfg HostConfig, vdp *TilePlaneVDP, host *TextHost) {
	output, compositor := newCompositor(VIDEO_BACKEND_EBITEN, cfg, vdp)
	if in, ok := output.(InputCapable); ok {
		in.SetPasteHandler(func(text string) { host.Paste(text) })
	}
	if r, ok := output.(interface{ SetResetHandler(func()) }); ok {
		r.SetResetHandler(host.Reset)
	}
	if err := output.Start(); err != nil {
		fmt.Printf("Failed to start video: %v\n", err)
		os.Exit(1)
	}
	if err := compositor.Start(); err != nil {
		fmt.Printf("Failed to start compositor: %v\n", err)
		os.Exit(1)
	}
	defer compositor.Stop()

	if d, ok := output.(interface{ Done() <-chan struct{} }); ok {
		<-d.Done()
		return
	}
	// Headless builds fall back to a windowless output with no window to wait on.
	compositor.Stop()
	compositor.Step()
	fmt.Printf("Rendered %d frames\n", output.GetFrameCount())
}

// runTerminal previews frames as ANSI text. On an interactive terminal each
// typed line is drawn like a clipboard paste and the preview redrawn.
func runTerminal(cfg HostConfig, vdp *TilePlaneVDP, host *TextHost) {
	_, compositor := newCompositor(VIDEO_BACKEND_HEADLESS, cfg, vdp)
	preview := NewTerminalPreview(os.Stdout, int(os.Stdout.Fd()))
	compositor.Observe(preview.Show)
	compositor.Step()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	fmt.Print("Type a line and press Enter to draw it, Ctrl+C to quit.\r\n")

	editor := NewLineEditor()
	quit := make(chan struct{})
	editor.OnQuit(func() {
		select {
		case <-quit:
		default:
			close(quit)
		}
	})
	editor.OnLine(func(line string) {
		host.Paste(line)
		fmt.Print("\x1b[H\x1b[2J")
		compositor.Step()
	})

	th := NewTerminalHost(editor)
	th.Start()
	defer th.Stop()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			fmt.Print("\r\n")
			return
		case <-th.Done():
			return
		case <-ticker.C:
			th.PrintOutput()
		}
	}
}
