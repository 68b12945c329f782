package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/somno/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title style
	TitleStyle lipgloss.Style

	// Panels
	InputPanelStyle lipgloss.Style
	ChartPanelStyle lipgloss.Style

	// Axis labels and markers
	LabelStyle   lipgloss.Style
	TickStyle    lipgloss.Style
	MarkerStyle  lipgloss.Style
	WarningStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{palette: p}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)

	s.InputPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)

	s.ChartPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.BgHighlight).
		Padding(0, 1)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.BgHighlight)

	s.TickStyle = lipgloss.NewStyle().
		Foreground(p.Gridline).
		Background(p.BgHighlight)

	s.MarkerStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Background(p.BgHighlight).
		Bold(true)

	s.WarningStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Background(p.BgHighlight)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Fg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	return s
}

// Palette returns the derived theme palette.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// cell renders width blank cells filled with hex.
func (s *Styles) cell(hex string, width int) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(spaces(width))
}

// blank renders width cells of panel background.
func (s *Styles) blank(width int) string {
	return s.LabelStyle.Render(spaces(width))
}

// tick renders the one-cell axis mark beside a time label.
func (s *Styles) tick(labelled bool) string {
	if !labelled {
		return s.blank(1)
	}
	return s.TickStyle.Render("─")
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
