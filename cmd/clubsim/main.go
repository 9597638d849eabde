// Clubsim is a deterministic, daily-cadence social club management game.
// Usage: clubsim [--version] [--plain] [--script <file>] [--preset <dir>]
//
//	[--save <file>] [--sqlite <file>]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinsol/clubsim/cli"
	"github.com/jinsol/clubsim/engine"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/loader"
	"github.com/jinsol/clubsim/persist"
	"github.com/jinsol/clubsim/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var presetDir string
	var scriptFile string
	var saveFile string
	var sqliteFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("clubsim %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--preset":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--preset requires a directory\n")
				os.Exit(1)
			}
			i++
			presetDir = args[i]
		case "--save":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--save requires a file path\n")
				os.Exit(1)
			}
			i++
			saveFile = args[i]
		case "--sqlite":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--sqlite requires a file path\n")
				os.Exit(1)
			}
			i++
			sqliteFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag %s\n", args[i])
			usage()
			os.Exit(1)
		}
	}

	// Preset: compiled Lua files when given, built-in defaults otherwise.
	var defs *state.Defs
	if presetDir != "" {
		var err error
		defs, err = loader.Load(presetDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading preset: %v\n", err)
			os.Exit(1)
		}
	} else {
		defs = state.DefaultDefs()
	}

	store, closeStore, err := openStore(saveFile, sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	eng := engine.New(defs, store)
	eng.Logf = func(format string, logArgs ...any) {
		fmt.Fprintf(os.Stderr, "clubsim: "+format+"\n", logArgs...)
	}

	// Script mode: open file, force plain, echo inputs.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, defs)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	if plain || !isTerminal() {
		c := cli.New(eng, defs)
		c.Run()
		return
	}

	if err := tui.Run(eng, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the persistence backend: SQLite when asked for, otherwise
// a JSON file (defaulting to ~/.clubsim/save.json).
func openStore(saveFile, sqliteFile string) (persist.Store, func(), error) {
	if sqliteFile != "" {
		st, err := persist.OpenSQLite(sqliteFile, "")
		if err != nil {
			return nil, nil, err
		}
		return st, func() { st.Close() }, nil
	}
	if saveFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		saveFile = filepath.Join(home, ".clubsim", "save.json")
	}
	return persist.NewFile(saveFile), func() {}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: clubsim [--version] [--plain] [--script <file>] [--preset <dir>] [--save <file>] [--sqlite <file>]\n")
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
