package gradient

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

func TestGradientString(t *testing.T) {
	sleep, err := ParseHex("#89e")
	require.NoError(t, err)

	g := New(Vertical)
	g.Add(RGBA(white, Float(0)), Float(0))
	g.Add(Variable("--sleep-color", sleep), Float(12.5))
	g.Add(RGBA(sleep, Precision(0.5, 3)), Precision(100.0/3, 3))
	g.Add(RGBA(white, Float(0)), NaN)

	want := "180deg, rgba(255, 255, 255, 0) 0%, var(--sleep-color) 12.5%, " +
		"rgba(136, 153, 238, 0.500) 33.3%, rgba(255, 255, 255, 0) NaN%"
	assert.Equal(t, want, g.String())
}

func TestGradientString_NoStops(t *testing.T) {
	assert.Equal(t, "180deg", New(Vertical).String())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#8899ee")
	require.NoError(t, err)
	r, g, b := c.RGB255()
	assert.Equal(t, [3]uint8{136, 153, 238}, [3]uint8{r, g, b})

	_, err = ParseHex("blue")
	assert.Error(t, err)
}

func TestGradientAt(t *testing.T) {
	g := New(Vertical)
	g.Add(RGBA(black, Float(0)), Float(0))
	g.Add(RGBA(black, Float(0)), Float(25))
	g.Add(RGBA(white, Float(1)), Float(25))
	g.Add(RGBA(white, Float(1)), Float(50))
	g.Add(RGBA(black, Float(0)), Float(50))

	tests := []struct {
		name      string
		pos       float64
		wantAlpha float64
	}{
		{name: "before band", pos: 10, wantAlpha: 0},
		{name: "band start is inside", pos: 25, wantAlpha: 1},
		{name: "inside band", pos: 40, wantAlpha: 1},
		{name: "band end is outside", pos: 50, wantAlpha: 0},
		{name: "after last stop", pos: 90, wantAlpha: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := g.At(tt.pos)
			assert.InDelta(t, tt.wantAlpha, a, 1e-9)
		})
	}
}

func TestGradientAt_Interpolates(t *testing.T) {
	g := New(Vertical)
	g.Add(RGBA(white, Precision(0, 3)), Float(0))
	g.Add(RGBA(white, Precision(1, 3)), Float(100))

	_, a := g.At(25)
	assert.InDelta(t, 0.25, a, 1e-9)
}

func TestGradientAt_SkipsInvalidAndClampsBackwards(t *testing.T) {
	g := New(Vertical)
	g.Add(RGBA(black, Float(0)), Float(0))
	g.Add(RGBA(white, Float(1)), NaN)
	g.Add(RGBA(white, Float(1)), Float(60))
	g.Add(RGBA(white, Float(1)), Float(80))
	// Moves back to 20, which resolves to 80.
	g.Add(RGBA(black, Float(0)), Float(20))

	_, a := g.At(70)
	assert.InDelta(t, 1, a, 1e-9)
	_, a = g.At(90)
	assert.InDelta(t, 0, a, 1e-9)
}

func TestGradientAt_Empty(t *testing.T) {
	_, a := New(Vertical).At(50)
	assert.Zero(t, a)
}

func TestGradientOver(t *testing.T) {
	g := New(Vertical)
	g.Add(RGBA(white, Float(1)), Float(0))
	g.Add(RGBA(white, Float(1)), Float(100))

	got := g.Over(black, 50)
	assert.Equal(t, "#ffffff", got.Hex())
}
