// Package chart builds the gradients that draw a sleep log: one occupancy
// column and one total-duration bar per day, plus a heat map across all days.
package chart

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/javiermolinar/somno/internal/gradient"
)

// Default palette values.
const (
	DefaultSleepVar  = "--sleep-color"
	DefaultSleepHex  = "#89e"
	DefaultHeatHex   = "#8899ee"
	DefaultMaxPerDay = 18
)

// Palette holds the colors used by every builder.
type Palette struct {
	Background gradient.Color // transparent base
	Sleep      gradient.Color // asleep intervals and duration bars
	Heat       colorful.Color // heat map hue, alpha varies per stop
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	p, err := NewPalette(DefaultSleepVar, DefaultSleepHex, DefaultHeatHex)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPalette builds a palette from a CSS variable name for the sleep color,
// the hex value that variable resolves to, and the heat map hex color.
func NewPalette(sleepVar, sleepHex, heatHex string) (Palette, error) {
	sleep, err := gradient.ParseHex(sleepHex)
	if err != nil {
		return Palette{}, fmt.Errorf("sleep color: %w", err)
	}
	heat, err := gradient.ParseHex(heatHex)
	if err != nil {
		return Palette{}, fmt.Errorf("heat color: %w", err)
	}

	var fg gradient.Color
	if sleepVar != "" {
		fg = gradient.Variable(sleepVar, sleep)
	} else {
		fg = gradient.RGBA(sleep, gradient.Float(1))
	}

	return Palette{
		Background: gradient.RGBA(colorful.Color{R: 1, G: 1, B: 1}, gradient.Float(0)),
		Sleep:      fg,
		Heat:       heat,
	}, nil
}

// heat returns the heat map color at alpha, printed to 3 significant digits.
func (p Palette) heat(alpha float64) gradient.Color {
	return gradient.RGBA(p.Heat, gradient.Precision(alpha, 3))
}
