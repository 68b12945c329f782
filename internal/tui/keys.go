package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+y":
		return m.copy("heat map", m.chart.HeatMapGradient.String()), nil

	case "ctrl+g":
		idx := m.cursorColumn()
		if idx < 0 {
			m.statusMsg = "Cursor is not on a day"
			return m, nil
		}
		return m.copy(fmt.Sprintf("day %d", idx+1), m.chart.Columns[idx].Gradient.String()), nil

	case "ctrl+l":
		m.input.Reset()
		m.recompute()
		m.statusMsg = "Cleared"
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.statusMsg = ""
		m.recompute()
	}
	return m, cmd
}

// copy writes text to the clipboard and reports the outcome in the status line.
func (m Model) copy(what, text string) Model {
	if err := m.copyText(text); err != nil {
		LogError("copy "+what, err)
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		return m
	}
	LogCopy(what, len(text))
	m.statusMsg = "Copied " + what + " gradient"
	return m
}
