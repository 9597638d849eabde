package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jinsol/clubsim/engine"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the club simulation TUI.
type Model struct {
	engine *engine.Engine
	defs   *state.Defs

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine
	choices  []types.Choice

	width    int
	height   int
	ready    bool
	quitting bool
}

// gameOutputMsg carries output from the engine into the Update loop.
type gameOutputMsg struct {
	input    string         // echoed player input (empty for the opening)
	lines    []string       // output lines
	choices  []types.Choice // replaces the active choice set when non-nil
	isSystem bool           // true for meta-command output
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, defs *state.Defs) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 128
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		defs:    defs,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, defs *state.Defs) error {
	m := New(eng, defs)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the opening screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		var lines []string

		header := m.defs.Game.Title
		if m.defs.Game.Version != "" {
			header += " v" + m.defs.Game.Version
		}
		lines = append(lines, header, "")

		if m.defs.Game.Intro != "" {
			lines = append(lines, m.defs.Game.Intro, "")
		}

		result := m.engine.Start()
		lines = append(lines, resultLines(result)...)

		return gameOutputMsg{lines: lines, choices: result.Choices}
	}
}

// resultLines flattens an engine result into display lines.
func resultLines(result types.Result) []string {
	var lines []string
	if result.Message != "" {
		lines = append(lines, strings.Split(result.Message, "\n")...)
	}
	for i, ch := range result.Choices {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, ch.Label))
	}
	return lines
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	choice, errLine := m.matchChoice(input)
	if errLine != "" {
		m = m.appendOutput(gameOutputMsg{input: input, lines: []string{errLine}, isSystem: true})
		return m, nil
	}

	result := m.engine.Invoke(choice.Action, choice.Params)
	m = m.appendOutput(gameOutputMsg{input: input, lines: resultLines(result)})
	m.choices = result.Choices
	return m, nil
}

// matchChoice resolves input against the current choices: a number picks
// directly, otherwise a case-insensitive label prefix wins.
func (m *Model) matchChoice(input string) (types.Choice, string) {
	if len(m.choices) == 0 {
		return types.Choice{}, "Nothing to choose right now."
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(m.choices) {
			return types.Choice{}, fmt.Sprintf("Pick a number between 1 and %d.", len(m.choices))
		}
		return m.choices[n-1], ""
	}
	lower := strings.ToLower(input)
	for _, ch := range m.choices {
		if strings.HasPrefix(strings.ToLower(ch.Label), lower) {
			return ch, ""
		}
	}
	return types.Choice{}, "No matching choice. Type a number or part of a label."
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	if msg.choices != nil {
		m.choices = msg.choices
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/reset":
		result := m.engine.Reset()
		m.choices = result.Choices
		return resultLines(result), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", parts[0])}, false
	}
}

func (m *Model) cmdHelp() []string {
	return []string{
		"Pick a choice by number, or type part of its label.",
		"",
		"System:",
		"  /state  - Show day, action points, stats and resources",
		"  /reset  - Disband the club and start over",
		"  /quit   - Exit (progress is saved automatically)",
		"  /help   - Show this help",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for input history",
	}
}

func (m *Model) cmdState() []string {
	s := m.engine.State
	output := []string{
		fmt.Sprintf("Day %d, action points %d/%d, club level %d", s.Day, s.ActionPoints, s.MaxActionPoints, s.ClubLevel),
	}
	for _, sd := range m.defs.Stats {
		output = append(output, fmt.Sprintf("%s: %d", sd.Name, s.Stats[sd.Key]))
	}
	for _, rd := range m.defs.Resources {
		output = append(output, fmt.Sprintf("%s: %d", rd.Name, s.Resources[rd.Key]))
	}
	for _, member := range s.Members {
		output = append(output, fmt.Sprintf("%s (%s): friendship %d", member.Name, member.Personality, member.Friendship))
	}
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
