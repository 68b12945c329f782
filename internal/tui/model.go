// Package tui provides the terminal user interface for somno.
package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/config"
	"github.com/javiermolinar/somno/internal/tui/theme"
)

const (
	defaultInputWidth = 28
	minChartRows      = 8
	// chromeLines covers the title, panel borders, marker row, status and help.
	chromeLines = 6
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	opts   chart.Options

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	input     textarea.Model
	chart     chart.Chart
	statusMsg string

	// Terminal dimensions
	width  int
	height int

	// Clipboard writer, replaceable in tests
	copyText func(string) error
}

// Option configures a Model.
type Option func(*Model)

// WithText preloads the text area.
func WithText(text string) Option {
	return func(m *Model) {
		m.input.SetValue(text)
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) {
		m.copyText = fn
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	chartOpts, err := cfg.ChartOptions()
	if err != nil {
		return Model{}, fmt.Errorf("building chart options: %w", err)
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return Model{}, fmt.Errorf("loading theme: %w", err)
	}

	input := textarea.New()
	input.Placeholder = "08:00-13:00, 14:00-15:00..."
	input.ShowLineNumbers = true
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetWidth(defaultInputWidth)
	input.Focus()

	m := Model{
		config:   cfg,
		opts:     chartOpts,
		theme:    t,
		styles:   NewStyles(t),
		input:    input,
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.recompute()
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Chart returns the chart for the current text.
func (m Model) Chart() chart.Chart {
	return m.chart
}

// Text returns the current log text.
func (m Model) Text() string {
	return m.input.Value()
}

// recompute rebuilds the whole chart from the text area.
func (m *Model) recompute() {
	m.chart = chart.Build(m.input.Value(), m.opts)
	LogRecompute(m.chart)
}

// cursorColumn returns the index of the column on the cursor's line, or -1.
func (m Model) cursorColumn() int {
	line := m.input.Line()
	for i, col := range m.chart.Columns {
		if col.Day.Line == line {
			return i
		}
	}
	return -1
}

// chartRows returns how many rows the 24 hour axis gets.
func (m Model) chartRows() int {
	if m.config.UI.Rows > 0 {
		return m.config.UI.Rows
	}
	return max(m.height-chromeLines, minChartRows)
}

// Run starts the TUI.
func Run(cfg *config.Config, text string) error {
	return RunWithDebug(cfg, text, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, text string, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model, err := New(cfg, WithText(text))
	if err != nil {
		LogError("new model", err)
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
