package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleChoice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindChoice
	kindSystem
	kindError
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case len(trimmed) > 2 && trimmed[0] >= '1' && trimmed[0] <= '9' && strings.HasPrefix(trimmed[1:], ". "):
		return kindChoice
	case strings.HasPrefix(line, "Not enough"):
		return kindError
	default:
		return kindNarrative
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindChoice:
		return styleChoice.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
