// Package loader loads Lua preset content into Go structs at load time.
// The Lua VM is discarded after loading; no Lua runs during play.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jinsol/clubsim/engine/state"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	game       *lua.LTable
	stats      []rawKeyed
	resources  []rawKeyed
	facilities []rawKeyed
	members    []*lua.LTable
	recruits   []*lua.LTable
	skills     []rawKeyed
	tables     []rawKeyed
	moves      []rawKeyed
	thresholds []*lua.LTable
	events     []rawKeyed
	tiers      []*lua.LTable
	balance    *lua.LTable
	messages   *lua.LTable
}

// rawKeyed is an id-first definition before compilation.
type rawKeyed struct {
	id    string
	table *lua.LTable
}

// Load reads all .lua files from dir, compiles them into preset definitions,
// validates references, and returns the immutable Defs.
func Load(dir string) (*state.Defs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading preset directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}

	// game.lua first, rest alphabetical, so metadata and balance land
	// before content that leans on them.
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		path := filepath.Join(dir, f)
		if err := L.DoFile(path); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	defs, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling preset data: %w", err)
	}

	if err := validate(defs); err != nil {
		return nil, err
	}

	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// math.randomseed would break replay determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// sortedLuaFiles orders preset files: game.lua first, rest alphabetical.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
