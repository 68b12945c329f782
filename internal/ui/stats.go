package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

const maxRangesWidth = 36

func (a *App) statsCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show per-day sleep totals",
		Long: `Show each day's total sleep as a bar, plus the average and the
time of day you are most often asleep.

The log is read the same way as for render.

Example:
  somno stats sleep.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			c, err := a.buildChart(cmd, args)
			if err != nil {
				return err
			}

			printStats(cmd.OutOrStdout(), c, termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func printStats(w io.Writer, c chart.Chart, width int) {
	if len(c.Columns) == 0 {
		fmt.Fprintln(w, "No days in log.")
		return
	}

	rangesWidth := 0
	rows := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		rows[i] = truncate(joinRanges(col.Day), maxRangesWidth)
		rangesWidth = max(rangesWidth, len([]rune(rows[i])))
	}

	maxMinutes := c.MaxPerDay * 60
	bw := barWidth(width, rangesWidth)
	rule := strings.Repeat("─", min(width, 10+rangesWidth+10+bw+3))

	fmt.Fprintf(w, "\n  %s\n", formatHeader(fmt.Sprintf("SLEEP LOG: %d days", len(c.Columns))))
	fmt.Fprintln(w, rule)

	for i, col := range c.Columns {
		total := col.Title()
		if !col.TotalDuration.Valid() {
			total = formatWarning(total)
		}
		fmt.Fprintf(w, "  Day %-3d  %-*s  %s  %s\n",
			i+1, rangesWidth, rows[i], total, DurationBar(col.TotalDuration, maxMinutes, bw))
	}

	fmt.Fprintln(w, rule)
	printSummary(w, NewStats(c))
}

func printSummary(w io.Writer, s Stats) {
	fmt.Fprintf(w, "  Average: %s  |  Shortest: %s  |  Longest: %s\n",
		formatStats(sleeplog.FormatDuration(s.Average)),
		sleeplog.FormatDuration(s.Shortest),
		sleeplog.FormatDuration(s.Longest))

	if s.PeakSegment >= 0 {
		fmt.Fprintf(w, "  Most often asleep: %s (%d of %d days)\n",
			formatStats(s.PeakLabel()), s.PeakCount, s.Days)
	}

	if s.InvalidDays > 0 {
		fmt.Fprintf(w, "  %s\n", formatWarning(fmt.Sprintf("Unparsed days: %d", s.InvalidDays)))
	}
}

func joinRanges(d sleeplog.Day) string {
	parts := make([]string, len(d.Ranges))
	for i, r := range d.Ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
