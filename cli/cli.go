// Package cli provides the plain terminal front end: numbered choice
// prompts, fuzzy label matching, and meta-command dispatch.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jinsol/clubsim/engine"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Defs      *state.Defs
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	choices []types.Choice
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) *CLI {
	return &CLI{
		Engine: eng,
		Defs:   defs,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the game loop: show the day's opening, then loop
// prompt, input, dispatch, output.
func (c *CLI) Run() {
	if c.Defs.Game.Intro != "" {
		c.printLine(c.Defs.Game.Intro)
		c.printLine("")
	}

	c.printResult(c.Engine.Start())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		choice, ok := c.matchChoice(input)
		if !ok {
			continue
		}
		c.printResult(c.Engine.Invoke(choice.Action, choice.Params))
	}
}

// matchChoice resolves player input against the current choice list: a
// number picks directly, otherwise the label is matched case-insensitively
// with a small edit-distance tolerance for typos.
func (c *CLI) matchChoice(input string) (types.Choice, bool) {
	if len(c.choices) == 0 {
		c.printLine("Nothing to choose right now.")
		return types.Choice{}, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(c.choices) {
			c.printLine(fmt.Sprintf("Pick a number between 1 and %d.", len(c.choices)))
			return types.Choice{}, false
		}
		return c.choices[n-1], true
	}

	lower := strings.ToLower(input)
	best := -1
	bestDist := 0
	for i, ch := range c.choices {
		label := strings.ToLower(ch.Label)
		if label == lower || strings.HasPrefix(label, lower) {
			return ch, true
		}
		dist := levenshtein.ComputeDistance(lower, label)
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	// Tolerate small typos outright; otherwise just suggest.
	if bestDist <= levenshteinLimit(len(c.choices[best].Label)) {
		return c.choices[best], true
	}
	c.printLine(fmt.Sprintf("Did you mean %q? Type its number to pick it.", c.choices[best].Label))
	return types.Choice{}, false
}

// levenshteinLimit scales typo tolerance with label length.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/reset":
		c.printResult(c.Engine.Reset())

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", parts[0]))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"Pick a choice by number, or type (part of) its label.",
		"",
		"System:",
		"  /state  - Show day, action points, stats and resources",
		"  /reset  - Disband the club and start over",
		"  /quit   - Exit (progress is saved automatically)",
		"  /help   - Show this help",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Day %d, action points %d/%d", s.Day, s.ActionPoints, s.MaxActionPoints))
	for _, sd := range c.Defs.Stats {
		c.printSystem(fmt.Sprintf("%s: %d", sd.Name, s.Stats[sd.Key]))
	}
	for _, rd := range c.Defs.Resources {
		c.printSystem(fmt.Sprintf("%s: %d", rd.Name, s.Resources[rd.Key]))
	}
	for _, m := range s.Members {
		c.printSystem(fmt.Sprintf("%s (%s): friendship %d", m.Name, m.Personality, m.Friendship))
	}
}

func (c *CLI) printResult(result types.Result) {
	if result.Message != "" {
		c.printLine(result.Message)
	}
	c.choices = result.Choices
	for i, ch := range result.Choices {
		c.printLine(fmt.Sprintf("  %d. %s", i+1, ch.Label))
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
