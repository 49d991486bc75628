// script_lua.go - Lua scene scripting for TidyText


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
script_lua.go - Lua Scenes

Scenes are Lua scripts that drive the text host. Globals:

  PLANE_A, PLANE_B, PLANE_WINDOW, PAL0-PAL3
  reset()
  palette(start, {colors...})
  background(index)
  text(plane, str, x, y)                          fixed-width system font
  clear(plane)
  draw(x, y, plane, pal, primary, secondary, str)  -> tiles
  single(x, y, plane, pal, primary, secondary, fmt, ...) -> tiles
  multi(x, y, plane, pal, primary, secondary, {lines...}) -> tiles
  stats() -> {ready, allocated, remaining, exhausted, drawn, truncated, cached}

single formats with Lua's string.format. multi stops at the first nil.
*/

package main

import (
	_ "embed"
	"fmt"

	"github.com/intuitionamiga/TidyText/tidytext"
	lua "github.com/yuin/gopher-lua"
)

//go:embed scenes/demo.lua
var demoScene string

const DEMO_SCENE_NAME = "demo"

type SceneRunner struct {
	L    *lua.LState
	host *TextHost
	vdp  *TilePlaneVDP
}

func NewSceneRunner(host *TextHost, vdp *TilePlaneVDP) *SceneRunner {
	s := &SceneRunner{
		L:    lua.NewState(),
		host: host,
		vdp:  vdp,
	}
	s.register()
	return s
}

func (s *SceneRunner) Close() {
	s.L.Close()
}

// RunDemo runs the built-in scene.
func (s *SceneRunner) RunDemo() error {
	return s.RunString(DEMO_SCENE_NAME, demoScene)
}

func (s *SceneRunner) RunString(name, src string) error {
	if err := s.L.DoString(src); err != nil {
		return fmt.Errorf("scene %s: %w", name, err)
	}
	return nil
}

func (s *SceneRunner) RunFile(path string) error {
	if err := s.L.DoFile(path); err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	return nil
}

func (s *SceneRunner) register() {
	L := s.L
	for name, v := range map[string]int{
		"PLANE_A":      int(tidytext.PLANE_A),
		"PLANE_B":      int(tidytext.PLANE_B),
		"PLANE_WINDOW": int(tidytext.PLANE_WINDOW),
		"PAL0":         PAL0,
		"PAL1":         PAL1,
		"PAL2":         PAL2,
		"PAL3":         PAL3,
	} {
		L.SetGlobal(name, lua.LNumber(v))
	}

	for name, fn := range map[string]lua.LGFunction{
		"reset":      s.luaReset,
		"palette":    s.luaPalette,
		"background": s.luaBackground,
		"text":       s.luaText,
		"clear":      s.luaClear,
		"draw":       s.luaDraw,
		"single":     s.luaSingle,
		"multi":      s.luaMulti,
		"stats":      s.luaStats,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// =============================================================================
// Argument Helpers
// =============================================================================

func checkPlane(L *lua.LState, n int) tidytext.Plane {
	p := L.CheckInt(n)
	if p < 0 || p >= VDP_PLANE_COUNT {
		L.ArgError(n, "plane must be PLANE_A, PLANE_B or PLANE_WINDOW")
	}
	return tidytext.Plane(p)
}

// checkByte reads an integer argument clamped into a byte; the renderer
// clamps palette registers and slots further.
func checkByte(L *lua.LState, n int) uint8 {
	return uint8(min(max(L.CheckInt(n), 0), 255))
}

// drawArgs reads the shared (x, y, plane, pal, primary, secondary) prefix.
func drawArgs(L *lua.LState) (x, y int, plane tidytext.Plane, pal, primary, secondary uint8) {
	return L.CheckInt(1), L.CheckInt(2), checkPlane(L, 3), checkByte(L, 4), checkByte(L, 5), checkByte(L, 6)
}

// =============================================================================
// Scene Functions
// =============================================================================

func (s *SceneRunner) luaReset(L *lua.LState) int {
	s.host.Reset()
	return 0
}

func (s *SceneRunner) luaPalette(L *lua.LState) int {
	start := L.CheckInt(1)
	tbl := L.CheckTable(2)
	colors := make([]uint16, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		colors = append(colors, uint16(lua.LVAsNumber(tbl.RawGetInt(i))))
	}
	s.host.Palette(start, colors)
	return 0
}

func (s *SceneRunner) luaBackground(L *lua.LState) int {
	s.vdp.SetBackgroundColor(checkByte(L, 1))
	return 0
}

func (s *SceneRunner) luaText(L *lua.LState) int {
	s.host.Text(checkPlane(L, 1), L.CheckString(2), L.CheckInt(3), L.CheckInt(4))
	return 0
}

func (s *SceneRunner) luaClear(L *lua.LState) int {
	s.vdp.ClearPlane(checkPlane(L, 1))
	return 0
}

func (s *SceneRunner) luaDraw(L *lua.LState) int {
	x, y, plane, pal, primary, secondary := drawArgs(L)
	n := s.host.DrawString(x, y, plane, pal, primary, secondary, L.CheckString(7))
	L.Push(lua.LNumber(n))
	return 1
}

func (s *SceneRunner) luaSingle(L *lua.LState) int {
	x, y, plane, pal, primary, secondary := drawArgs(L)
	L.CheckString(7)

	args := make([]lua.LValue, 0, L.GetTop()-6)
	for i := 7; i <= L.GetTop(); i++ {
		args = append(args, L.Get(i))
	}
	format := L.GetField(L.GetGlobal("string"), "format")
	if err := L.CallByParam(lua.P{Fn: format, NRet: 1, Protect: true}, args...); err != nil {
		L.RaiseError("single: %v", err)
		return 0
	}
	line := lua.LVAsString(L.Get(-1))
	L.Pop(1)

	n := s.host.DrawString(x, y, plane, pal, primary, secondary, line)
	L.Push(lua.LNumber(n))
	return 1
}

func (s *SceneRunner) luaMulti(L *lua.LState) int {
	x, y, plane, pal, primary, secondary := drawArgs(L)
	tbl := L.CheckTable(7)

	var lines []string
	for i := 1; ; i++ {
		v := tbl.RawGetInt(i)
		if v == lua.LNil {
			break
		}
		lines = append(lines, lua.LVAsString(v))
	}
	n := s.host.Multi(x, y, plane, pal, primary, secondary, lines)
	L.Push(lua.LNumber(n))
	return 1
}

func (s *SceneRunner) luaStats(L *lua.LState) int {
	st := s.host.Stats()
	t := L.NewTable()
	t.RawSetString("ready", lua.LBool(st.Ready))
	t.RawSetString("allocated", lua.LNumber(st.TilesAllocated))
	t.RawSetString("remaining", lua.LNumber(st.TilesRemaining))
	t.RawSetString("exhausted", lua.LBool(st.Exhausted))
	t.RawSetString("drawn", lua.LNumber(st.LinesDrawn))
	t.RawSetString("truncated", lua.LNumber(st.LinesTruncated))
	t.RawSetString("cached", lua.LNumber(st.CacheEntries))
	L.Push(t)
	return 1
}
