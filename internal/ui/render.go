package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/somno/internal/chart"
)

// RenderedDay is one day of `somno render --json`.
type RenderedDay struct {
	Line          int      `json:"line"`
	Ranges        []string `json:"ranges"`
	Total         string   `json:"total"`
	Gradient      string   `json:"gradient"`
	TotalGradient string   `json:"total_gradient"`
}

// Rendered is the output of `somno render --json`.
type Rendered struct {
	Days     []RenderedDay `json:"days"`
	HeatMap  string        `json:"heat_map"`
	Average  string        `json:"average"`
	MaxHours int           `json:"max_per_day"`
}

func (a *App) renderCmd() *cobra.Command {
	var asJSON bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the gradient strings for a sleep log",
		Long: `Print every gradient computed from a sleep log.

The log is read from file, from the configured input path, or from stdin
when file is "-" or nothing else is given. Each gradient is the argument
list of a CSS linear-gradient().

Example:
  somno render sleep.txt
  pbpaste | somno render --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			c, err := a.buildChart(cmd, args)
			if err != nil {
				return err
			}

			if asJSON {
				return writeRenderedJSON(cmd.OutOrStdout(), c)
			}
			printRendered(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// NewRendered collects the printable strings of c.
func NewRendered(c chart.Chart) Rendered {
	out := Rendered{
		Days:     make([]RenderedDay, 0, len(c.Columns)),
		HeatMap:  c.HeatMapGradient.String(),
		Average:  c.AverageTitle(),
		MaxHours: c.MaxPerDay,
	}
	for _, col := range c.Columns {
		ranges := make([]string, len(col.Day.Ranges))
		for i, r := range col.Day.Ranges {
			ranges[i] = r.String()
		}
		out.Days = append(out.Days, RenderedDay{
			Line:          col.Day.Line + 1,
			Ranges:        ranges,
			Total:         col.Title(),
			Gradient:      col.Gradient.String(),
			TotalGradient: col.TotalDurationGradient.String(),
		})
	}
	return out
}

func writeRenderedJSON(w io.Writer, c chart.Chart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewRendered(c)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func printRendered(w io.Writer, c chart.Chart) {
	r := NewRendered(c)
	if len(r.Days) == 0 {
		fmt.Fprintln(w, "No days in log.")
	}
	for i, d := range r.Days {
		fmt.Fprintf(w, "%s %s\n", formatHeader(fmt.Sprintf("Day %d", i+1)), formatMuted(fmt.Sprintf("(line %d, %s)", d.Line, d.Total)))
		fmt.Fprintf(w, "  gradient: %s\n", d.Gradient)
		fmt.Fprintf(w, "  total:    %s\n", d.TotalGradient)
	}
	fmt.Fprintf(w, "%s %s\n", formatHeader("Heat map"), formatMuted("("+r.Average+")"))
	fmt.Fprintf(w, "  gradient: %s\n", r.HeatMap)
}
