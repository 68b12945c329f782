package chart

import (
	"github.com/javiermolinar/somno/internal/gradient"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

// HeatMap counts, per 15 minute segment, how many ranges cover it.
type HeatMap [sleeplog.SegmentCount]int

// BuildHeatMap increments every segment from a range's start segment through
// its end segment, both inclusive. Ranges ending before they start, and
// unparsable ranges, add nothing. Segments past the end of the day are dropped.
func BuildHeatMap(ranges []sleeplog.TimeRange) HeatMap {
	var hm HeatMap
	for _, r := range ranges {
		start, ok := sleeplog.SegmentIndex(r.Start)
		if !ok {
			continue
		}
		end, ok := sleeplog.SegmentIndex(r.End)
		if !ok {
			continue
		}
		end = min(end, sleeplog.SegmentCount-1)
		for i := start; i <= end; i++ {
			hm[i]++
		}
	}
	return hm
}

// Max returns the highest segment count.
func (hm HeatMap) Max() int {
	m := 0
	for _, v := range hm {
		m = max(m, v)
	}
	return m
}

// HeatMapGradient draws the heat map as bands whose alpha is count/maxVal.
// A pair of stops is emitted at each segment boundary where the count changes.
// When maxVal is not positive there is nothing to scale against and every
// band is transparent.
func HeatMapGradient(hm HeatMap, maxVal int, p Palette) gradient.Gradient {
	alpha := func(count int) float64 {
		if maxVal <= 0 {
			return 0
		}
		return float64(count) / float64(maxVal)
	}

	g := gradient.New(gradient.Vertical)
	g.Add(p.heat(0), gradient.Float(0))

	last := 0
	for i, cur := range hm {
		if cur == last {
			continue
		}
		pos := gradient.Precision(float64(i)/float64(sleeplog.SegmentCount)*100, 3)
		g.Add(p.heat(alpha(last)), pos)
		g.Add(p.heat(alpha(cur)), pos)
		last = cur
	}

	g.Add(p.heat(0), gradient.Float(100))
	return g
}
