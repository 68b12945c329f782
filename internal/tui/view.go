package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const helpText = "ctrl+y copy heat map · ctrl+g copy day · ctrl+l clear · esc quit"

// View renders the TUI.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}

	title := m.styles.TitleStyle.Render("somno")

	input := m.styles.InputPanelStyle.Render(m.input.View())
	chartWidth := width - lipgloss.Width(input) - m.styles.ChartPanelStyle.GetHorizontalFrameSize()
	layout := chartLayout{
		rows:     m.chartRows(),
		colWidth: m.config.UI.ColumnWidth,
		maxCols:  fitColumns(chartWidth, m.config.UI.ColumnWidth),
		cursor:   m.cursorColumn(),
	}
	chartPane := m.styles.ChartPanelStyle.Render(m.styles.renderChart(m.chart, layout))

	body := lipgloss.JoinHorizontal(lipgloss.Top, input, chartPane)

	status := m.styles.StatusStyle.Render(ansi.Truncate(m.statusLine(), width, "…"))
	help := m.styles.HelpStyle.Render(ansi.Truncate(helpText, width, "…"))

	return strings.Join([]string{title, body, status, help}, "\n")
}

// statusLine describes the day under the cursor and the overall average.
func (m Model) statusLine() string {
	parts := make([]string, 0, 3)
	if idx := m.cursorColumn(); idx >= 0 {
		col := m.chart.Columns[idx]
		parts = append(parts, fmt.Sprintf("Day %d: %s", idx+1, col.Title()))
	}
	parts = append(parts, fmt.Sprintf("%d days", len(m.chart.Columns)))
	parts = append(parts, m.chart.AverageTitle())

	line := strings.Join(parts, " · ")
	if m.statusMsg != "" {
		line = m.statusMsg + " │ " + line
	}
	return line
}
