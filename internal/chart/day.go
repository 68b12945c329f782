package chart

import (
	"github.com/javiermolinar/somno/internal/gradient"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

// DayGradient draws a day's ranges as hard-edged bands on a transparent column.
// Ranges are used in input order; overlapping or reversed ranges produce
// overlapping or decreasing stops.
func DayGradient(ranges []sleeplog.TimeRange, p Palette) gradient.Gradient {
	g := gradient.New(gradient.Vertical)
	g.Add(p.Background, gradient.Float(0))
	for _, r := range ranges {
		start := gradient.Maybe(sleeplog.Percent(r.Start))
		end := gradient.Maybe(sleeplog.Percent(r.End))
		g.Add(p.Background, start)
		g.Add(p.Sleep, start)
		g.Add(p.Sleep, end)
		g.Add(p.Background, end)
	}
	return g
}

// TotalDurationGradient draws a bar filled from the bottom in proportion to the
// day's total against maxPerDay hours. Totals above the ceiling are not clamped.
func TotalDurationGradient(ranges []sleeplog.TimeRange, p Palette, maxPerDay int) gradient.Gradient {
	height := durationBarTop(sleeplog.TotalDuration(ranges), maxPerDay)

	g := gradient.New(gradient.Vertical)
	g.Add(p.Background, gradient.Float(0))
	g.Add(p.Background, height)
	g.Add(p.Sleep, height)
	g.Add(p.Sleep, gradient.Float(100))
	return g
}

// durationBarTop returns where the filled part of a duration bar begins.
func durationBarTop(total sleeplog.Minutes, maxPerDay int) gradient.Number {
	n, ok := total.Int()
	if !ok {
		return gradient.NaN
	}
	ceiling := maxPerDay * 60
	return gradient.Float(float64(100*(ceiling-n)) / float64(ceiling))
}
