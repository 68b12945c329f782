package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(m.inputWidth())
		m.input.SetHeight(max(m.chartRows(), 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// inputWidth gives the text area about a third of the screen.
func (m Model) inputWidth() int {
	if m.width <= 0 {
		return defaultInputWidth
	}
	return max(min(m.width/3, 40), 16)
}
