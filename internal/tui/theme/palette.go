// Package theme provides color themes for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent lipgloss.Color

	// Canvas is what translucent gradient stops are blended onto.
	Canvas colorful.Color
	// Gridline is a faint color for axis ticks.
	Gridline lipgloss.Color

	IsLight bool
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	canvas := parseOr(t.BgHighlight, parseOr(t.Bg, colorful.Color{}))
	isLight := isLightTheme(canvas)
	gridline := canvas.BlendRgb(parseOr(t.FgMuted, canvas), 0.25).Clamped()

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Border:      lipgloss.Color(t.Border),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent: lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),

		Canvas:   canvas,
		Gridline: lipgloss.Color(gridline.Hex()),
		IsLight:  isLight,
	}
}

func parseOr(hex string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func isLightTheme(bg colorful.Color) bool {
	return relativeLuminance(bg) > 0.55
}

func chooseTextColor(bg, lightText, darkText string) string {
	b := parseOr(bg, colorful.Color{})
	lightContrast := contrastRatio(b, parseOr(lightText, colorful.Color{}))
	darkContrast := contrastRatio(b, parseOr(darkText, colorful.Color{}))
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b colorful.Color) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
