package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing day,
// action points, stats, and resources. Stats drop to abbreviations when the
// full listing does not fit.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := fmt.Sprintf(" Day %d | AP %d/%d", s.Day, s.ActionPoints, s.MaxActionPoints)

	var stats []string
	for _, sd := range m.defs.Stats {
		stats = append(stats, fmt.Sprintf("%s %d", sd.Name, s.Stats[sd.Key]))
	}
	var resources []string
	for _, rd := range m.defs.Resources {
		resources = append(resources, fmt.Sprintf("%s %d", rd.Name, s.Resources[rd.Key]))
	}

	right := strings.Join(stats, " ") + " | " + strings.Join(resources, " ") + " "
	if lipgloss.Width(left)+lipgloss.Width(right)+2 >= m.width {
		// Abbreviate: first letter of each name.
		stats = stats[:0]
		for _, sd := range m.defs.Stats {
			stats = append(stats, fmt.Sprintf("%s%d", initial(sd.Name), s.Stats[sd.Key]))
		}
		resources = resources[:0]
		for _, rd := range m.defs.Resources {
			resources = append(resources, fmt.Sprintf("%s%d", initial(rd.Name), s.Resources[rd.Key]))
		}
		right = strings.Join(stats, " ") + " | " + strings.Join(resources, " ") + " "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

func initial(name string) string {
	if name == "" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}
