package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a stop color. It renders either as an rgba() literal or, when
// Var is set, as a var() reference whose resolved value is RGB.
type Color struct {
	RGB   colorful.Color
	Alpha Number
	Var   string
}

// RGBA returns an rgba() color. Channels are taken from c.
func RGBA(c colorful.Color, alpha Number) Color {
	return Color{RGB: c, Alpha: alpha}
}

// Variable returns a color rendered as var(name). resolved is what terminal
// consumers draw in its place.
func Variable(name string, resolved colorful.Color) Color {
	return Color{RGB: resolved, Alpha: Float(1), Var: name}
}

// WithAlpha returns c with a different alpha.
func (c Color) WithAlpha(alpha Number) Color {
	c.Alpha = alpha
	return c
}

func (c Color) String() string {
	if c.Var != "" {
		return "var(" + c.Var + ")"
	}
	r, g, b := c.RGB.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, c.Alpha)
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}
