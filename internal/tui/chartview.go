package tui

import (
	"strings"

	"github.com/javiermolinar/somno/internal/chart"
)

// Fixed widths of the chart pane, in cells.
const (
	timeLabelWidth  = 5
	totalLabelWidth = 2
	heatWidth       = 2
	sectionGap      = 3
)

// chartLayout describes how the chart pane is drawn.
type chartLayout struct {
	rows     int // rows covering 24 hours
	colWidth int // cells per day column
	maxCols  int // day columns that fit
	cursor   int // highlighted column index, -1 for none
}

// fitColumns returns how many day columns fit in width. Each day appears in
// both the timetable and the totals section.
func fitColumns(width, colWidth int) int {
	fixed := timeLabelWidth + 1 + heatWidth + 1 + sectionGap + totalLabelWidth + 1
	if colWidth < 1 || width <= fixed {
		return 0
	}
	return (width - fixed) / (2 * colWidth)
}

// visibleWindow picks which columns to draw: the most recent ones, shifted
// back far enough to include the cursor.
func visibleWindow(total, fit, cursor int) (start, end int) {
	if total <= fit {
		return 0, total
	}
	start = total - fit
	if cursor >= 0 && cursor < start {
		start = cursor
	}
	return start, start + fit
}

// labelRows places labels at rows given their fractional offset down the axis.
// Labels landing on an occupied row are dropped.
func labelRows(labels []string, fractions []float64, rows int) []string {
	out := make([]string, rows)
	for i, label := range labels {
		r := int(fractions[i] * float64(rows))
		if r < 0 || r >= rows || out[r] != "" {
			continue
		}
		out[r] = label
	}
	return out
}

func timeAxis(rows int) []string {
	labels := chart.TimeLabels()
	fractions := make([]float64, len(labels))
	for i := range labels {
		fractions[i] = float64(i*3) / 24
	}
	return labelRows(labels, fractions, rows)
}

func totalsAxis(maxPerDay, rows int) []string {
	labels := chart.TotalsLabels(maxPerDay)
	fractions := make([]float64, len(labels))
	for i := range labels {
		hours := (len(labels) - i) * 3
		fractions[i] = float64(maxPerDay-hours) / float64(maxPerDay)
	}
	return labelRows(labels, fractions, rows)
}

// renderChart draws the heat map, day columns and duration bars.
// Each row samples the gradients at its midpoint.
func (s *Styles) renderChart(c chart.Chart, l chartLayout) string {
	if l.rows <= 0 {
		return ""
	}
	canvas := s.palette.Canvas
	start, end := visibleWindow(len(c.Columns), l.maxCols, l.cursor)
	cols := c.Columns[start:end]

	times := timeAxis(l.rows)
	totals := totalsAxis(c.MaxPerDay, l.rows)

	var b strings.Builder
	for r := 0; r < l.rows; r++ {
		pos := (float64(r) + 0.5) / float64(l.rows) * 100

		b.WriteString(s.LabelStyle.Render(padRight(times[r], timeLabelWidth)))
		b.WriteString(s.tick(times[r] != ""))
		b.WriteString(s.cell(c.HeatMapGradient.Over(canvas, pos).Hex(), heatWidth))
		b.WriteString(s.blank(1))
		for _, col := range cols {
			b.WriteString(s.cell(col.Gradient.Over(canvas, pos).Hex(), l.colWidth))
		}

		b.WriteString(s.blank(sectionGap))
		b.WriteString(s.LabelStyle.Render(padLeft(totals[r], totalLabelWidth)))
		b.WriteString(s.blank(1))
		for _, col := range cols {
			b.WriteString(s.cell(col.TotalDurationGradient.Over(canvas, pos).Hex(), l.colWidth))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.markerRow(cols, start, l))
	return b.String()
}

// markerRow points at the cursor's column and flags days that did not parse.
func (s *Styles) markerRow(cols []chart.Column, start int, l chartLayout) string {
	markers := make([]string, len(cols))
	for i, col := range cols {
		switch {
		case start+i == l.cursor:
			markers[i] = s.MarkerStyle.Render(padRight("▲", l.colWidth))
		case !col.TotalDuration.Valid():
			markers[i] = s.WarningStyle.Render(padRight("!", l.colWidth))
		default:
			markers[i] = s.blank(l.colWidth)
		}
	}
	row := strings.Join(markers, "")

	var b strings.Builder
	b.WriteString(s.blank(timeLabelWidth + 1 + heatWidth + 1))
	b.WriteString(row)
	b.WriteString(s.blank(sectionGap + totalLabelWidth + 1))
	b.WriteString(row)
	return b.String()
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + spaces(width-n)
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return spaces(width-n) + s
}
