package gradient

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Vertical is the angle of a top-to-bottom gradient.
const Vertical = 180

// Stop is a color at a percentage along the gradient.
type Stop struct {
	Color    Color
	Position Number
}

func (s Stop) String() string {
	return s.Color.String() + " " + s.Position.String() + "%"
}

// Gradient is an ordered list of stops. Positions are emitted as given, even
// when they decrease.
type Gradient struct {
	Angle int
	Stops []Stop
}

// New returns an empty gradient at the given angle in degrees.
func New(angle int) Gradient {
	return Gradient{Angle: angle}
}

// Add appends a stop.
func (g *Gradient) Add(c Color, pos Number) {
	g.Stops = append(g.Stops, Stop{Color: c, Position: pos})
}

// String renders "<angle>deg, <color> <pos>%, ...", the argument list of a
// CSS linear-gradient().
func (g Gradient) String() string {
	parts := make([]string, 0, len(g.Stops)+1)
	parts = append(parts, strconv.Itoa(g.Angle)+"deg")
	for _, s := range g.Stops {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

type samplePoint struct {
	pos   float64
	color colorful.Color
	alpha float64
}

// At samples the gradient at pos percent. Stops with an invalid position or
// alpha are skipped, and a position lower than an earlier one is raised to it,
// the way browsers resolve stop lists. Returns zero alpha when no stop is usable.
func (g Gradient) At(pos float64) (colorful.Color, float64) {
	points := make([]samplePoint, 0, len(g.Stops))
	last := math.Inf(-1)
	for _, s := range g.Stops {
		p, ok := s.Position.Value()
		if !ok || math.IsInf(p, 0) {
			continue
		}
		a, ok := s.Color.Alpha.Value()
		if !ok || math.IsInf(a, 0) {
			continue
		}
		if p < last {
			p = last
		}
		last = p
		points = append(points, samplePoint{pos: p, color: s.Color.RGB, alpha: clamp01(a)})
	}

	if len(points) == 0 {
		return colorful.Color{}, 0
	}
	if pos < points[0].pos {
		return points[0].color, points[0].alpha
	}
	for i := 1; i < len(points); i++ {
		next := points[i]
		if pos >= next.pos {
			continue
		}
		prev := points[i-1]
		t := (pos - prev.pos) / (next.pos - prev.pos)
		return prev.color.BlendRgb(next.color, t), prev.alpha + (next.alpha-prev.alpha)*t
	}
	end := points[len(points)-1]
	return end.color, end.alpha
}

// Over samples the gradient at pos and composites it over bg.
func (g Gradient) Over(bg colorful.Color, pos float64) colorful.Color {
	c, a := g.At(pos)
	return bg.BlendRgb(c, a).Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
