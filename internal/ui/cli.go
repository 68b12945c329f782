package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/config"
	"github.com/javiermolinar/somno/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrNoInput is returned when a command needs a log but none was given.
var ErrNoInput = errors.New("no sleep log given")

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool   // Enable debug logging
	file   string // Log file preloaded into the TUI
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "somno",
		Short: "Turn a sleep log into gradients",
		Long: `Somno turns a plain-text sleep log into gradients.

Each line of the log is one day, written as comma-separated ranges:

  23:30-23:59, 00:00-07:15

Every day gets an occupancy gradient and a total-duration bar, and all
days together get a heat map of when sleep usually happens.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := ""
			if a.file != "" {
				var err error
				text, err = readLog(cmd.InOrStdin(), a.file)
				if err != nil {
					return err
				}
			}
			return tui.RunWithDebug(a.config, text, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.Flags().StringVarP(&a.file, "file", "f", "", "Sleep log to preload into the editor")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.statsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "somno %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// buildChart reads the log named by args, or the configured input, and
// builds its chart.
func (a *App) buildChart(cmd *cobra.Command, args []string) (chart.Chart, error) {
	path := a.config.Input.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = "-"
	}

	text, err := readLog(cmd.InOrStdin(), path)
	if err != nil {
		return chart.Chart{}, err
	}

	opts, err := a.config.ChartOptions()
	if err != nil {
		return chart.Chart{}, fmt.Errorf("building chart options: %w", err)
	}
	return chart.Build(text, opts), nil
}

// readLog reads a sleep log from path, or from stdin when path is "-".
func readLog(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		if stdin == nil {
			return "", ErrNoInput
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading sleep log: %w", err)
	}
	return string(data), nil
}
