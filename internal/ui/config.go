package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/somno/internal/config"
	"github.com/javiermolinar/somno/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  somno config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Chart.MaxPerDay = promptInt(reader, out, "Max hours per day (1-24)", cfg.Chart.MaxPerDay)
	cfg.Chart.SleepColor = promptValue(reader, out, "Sleep color CSS variable (\"none\" for rgba)", cfg.Chart.SleepColor)
	if cfg.Chart.SleepColor == "none" {
		cfg.Chart.SleepColor = ""
	}
	cfg.Chart.SleepHex = promptValue(reader, out, "Sleep color hex", cfg.Chart.SleepHex)
	cfg.Chart.HeatColor = promptValue(reader, out, "Heat map color hex", cfg.Chart.HeatColor)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.ColumnWidth = promptInt(reader, out, "Column width", cfg.UI.ColumnWidth)
	cfg.UI.Rows = promptInt(reader, out, "Chart rows (0 to fit terminal)", cfg.UI.Rows)
	cfg.Input.Path = promptValue(reader, out, "Default sleep log path", cfg.Input.Path)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[chart]")
	fmt.Fprintf(out, "  max_per_day  = %d\n", cfg.Chart.MaxPerDay)
	fmt.Fprintf(out, "  sleep_color  = %s\n", cfg.Chart.SleepColor)
	fmt.Fprintf(out, "  sleep_hex    = %s\n", cfg.Chart.SleepHex)
	fmt.Fprintf(out, "  heat_color   = %s\n", cfg.Chart.HeatColor)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme        = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  column_width = %d\n", cfg.UI.ColumnWidth)
	fmt.Fprintf(out, "  rows         = %d\n", cfg.UI.Rows)
	fmt.Fprintln(out, "\n[input]")
	fmt.Fprintf(out, "  path         = %s\n", cfg.Input.Path)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		// Stop asking once input runs out.
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
