package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

// Stats summarizes a chart for the `stats` command.
type Stats struct {
	Days        int
	InvalidDays int
	Average     sleeplog.Minutes
	Shortest    sleeplog.Minutes
	Longest     sleeplog.Minutes
	PeakSegment int // heat map segment asleep most often, -1 if none
	PeakCount   int
}

// NewStats summarizes c. Days that did not parse only count in InvalidDays.
func NewStats(c chart.Chart) Stats {
	s := Stats{
		Days:        len(c.Columns),
		Average:     c.Average,
		Shortest:    sleeplog.InvalidMinutes,
		Longest:     sleeplog.InvalidMinutes,
		PeakSegment: -1,
	}

	for _, col := range c.Columns {
		n, ok := col.TotalDuration.Int()
		if !ok {
			s.InvalidDays++
			continue
		}
		if lo, ok := s.Shortest.Int(); !ok || n < lo {
			s.Shortest = col.TotalDuration
		}
		if hi, ok := s.Longest.Int(); !ok || n > hi {
			s.Longest = col.TotalDuration
		}
	}

	for i, count := range c.HeatMap {
		if count > s.PeakCount {
			s.PeakCount = count
			s.PeakSegment = i
		}
	}
	return s
}

// PeakLabel describes the busiest heat map segment, e.g. "03:00-03:15".
func (s Stats) PeakLabel() string {
	if s.PeakSegment < 0 {
		return "none"
	}
	return SegmentLabel(s.PeakSegment)
}

// SegmentLabel formats the clock span covered by heat map segment i.
func SegmentLabel(i int) string {
	start := sleeplog.MinutesOf(i * sleeplog.SegmentMinutes)
	end := sleeplog.MinutesOf((i + 1) * sleeplog.SegmentMinutes)
	return sleeplog.FormatDuration(start) + "-" + sleeplog.FormatDuration(end)
}

// DurationBar draws total as a bar scaled to maxMinutes. Totals above the
// ceiling fill the bar and get a "+" marker.
func DurationBar(total sleeplog.Minutes, maxMinutes, width int) string {
	n, ok := total.Int()
	if !ok {
		return "[" + formatWarning(strings.Repeat("?", width)) + "]"
	}
	if maxMinutes <= 0 || width <= 0 {
		return "[]"
	}

	filled := (max(n, 0) * width) / maxMinutes
	over := ""
	if filled > width {
		filled = width
		over = formatWarning("+")
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s]%s", formatSleep(bar), over)
}

// barWidth picks a bar width that fits the terminal next to the table.
func barWidth(termWidth, rangesWidth int) int {
	// "  Day NN  " + ranges + "  HH:MM  [" + bar + "]+"
	overhead := 10 + rangesWidth + 10 + 2
	return max(min(termWidth-overhead, 40), 10)
}
