package chart

import (
	"fmt"
	"strconv"

	"github.com/javiermolinar/somno/internal/gradient"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

// Options configures Build.
type Options struct {
	Palette   Palette
	MaxPerDay int // duration bar ceiling in hours
}

// DefaultOptions returns the stock palette and an 18 hour ceiling.
func DefaultOptions() Options {
	return Options{
		Palette:   DefaultPalette(),
		MaxPerDay: DefaultMaxPerDay,
	}
}

// Column is everything drawn for one day.
type Column struct {
	Day                   sleeplog.Day
	Gradient              gradient.Gradient
	TotalDuration         sleeplog.Minutes
	TotalDurationGradient gradient.Gradient
}

// Title is the day's total as "HH:MM".
func (c Column) Title() string {
	return sleeplog.FormatDuration(c.TotalDuration)
}

// Chart is the full rendering input derived from one log text.
type Chart struct {
	Columns         []Column
	HeatMap         HeatMap
	HeatMapGradient gradient.Gradient
	Average         sleeplog.Minutes
	MaxPerDay       int
}

// AverageTitle is the heat map caption, "Average: HH:MM".
func (c Chart) AverageTitle() string {
	return "Average: " + sleeplog.FormatDuration(c.Average)
}

// Build recomputes everything from text. It holds no state between calls, so
// identical text always produces identical output.
func Build(text string, opts Options) Chart {
	if opts.MaxPerDay <= 0 {
		opts.MaxPerDay = DefaultMaxPerDay
	}

	days := sleeplog.ParseLog(text)
	columns := make([]Column, len(days))
	durations := make([]sleeplog.Minutes, len(days))
	for i, d := range days {
		durations[i] = d.TotalDuration()
		columns[i] = Column{
			Day:                   d,
			Gradient:              DayGradient(d.Ranges, opts.Palette),
			TotalDuration:         durations[i],
			TotalDurationGradient: TotalDurationGradient(d.Ranges, opts.Palette, opts.MaxPerDay),
		}
	}

	hm := BuildHeatMap(sleeplog.Ranges(days))
	return Chart{
		Columns:         columns,
		HeatMap:         hm,
		HeatMapGradient: HeatMapGradient(hm, len(days), opts.Palette),
		Average:         sleeplog.Average(durations),
		MaxPerDay:       opts.MaxPerDay,
	}
}

// ColumnAtLine returns the column parsed from the given source line.
func (c Chart) ColumnAtLine(line int) (Column, bool) {
	for _, col := range c.Columns {
		if col.Day.Line == line {
			return col, true
		}
	}
	return Column{}, false
}

// TimeLabels returns the clock axis labels, every three hours from midnight.
func TimeLabels() []string {
	labels := make([]string, 0, 8)
	for h := 0; h < 24; h += 3 {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}

// TotalsLabels returns the duration axis labels in hours, top to bottom.
func TotalsLabels(maxPerDay int) []string {
	n := maxPerDay / 3
	labels := make([]string, 0, n)
	for i := n; i >= 1; i-- {
		labels = append(labels, strconv.Itoa(i*3))
	}
	return labels
}
