// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/gradient"
)

// Config holds the application configuration.
type Config struct {
	Chart ChartConfig `toml:"chart"`
	UI    UIConfig    `toml:"ui"`
	Input InputConfig `toml:"input"`
}

// ChartConfig holds gradient and axis settings.
type ChartConfig struct {
	MaxPerDay  int    `toml:"max_per_day"` // duration bar ceiling in hours
	SleepColor string `toml:"sleep_color"` // CSS variable name, e.g. "--sleep-color" (empty for rgba)
	SleepHex   string `toml:"sleep_hex"`   // e.g. "#89e"
	HeatColor  string `toml:"heat_color"`  // e.g. "#8899ee"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme       string `toml:"theme"`        // "mocha", "macchiato", "frappe", "latte"
	ColumnWidth int    `toml:"column_width"` // cells per day column
	Rows        int    `toml:"rows"`         // chart height in rows (0 = fit terminal)
}

// InputConfig holds the default log source.
type InputConfig struct {
	Path string `toml:"path"` // log file read when no file argument is given
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			MaxPerDay:  chart.DefaultMaxPerDay,
			SleepColor: chart.DefaultSleepVar,
			SleepHex:   chart.DefaultSleepHex,
			HeatColor:  chart.DefaultHeatHex,
		},
		UI: UIConfig{
			Theme:       "mocha",
			ColumnWidth: 2,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "somno", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Input.Path = expandPath(cfg.Input.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SOMNO_MAX_PER_DAY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SOMNO_MAX_PER_DAY: %w", err)
		}
		cfg.Chart.MaxPerDay = n
	}
	if v, ok := os.LookupEnv("SOMNO_SLEEP_COLOR"); ok {
		cfg.Chart.SleepColor = v
	}
	if v := os.Getenv("SOMNO_SLEEP_HEX"); v != "" {
		cfg.Chart.SleepHex = v
	}
	if v := os.Getenv("SOMNO_HEAT_COLOR"); v != "" {
		cfg.Chart.HeatColor = v
	}

	if v := os.Getenv("SOMNO_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	if v := os.Getenv("SOMNO_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Chart.MaxPerDay <= 0 {
		return errors.New("max_per_day must be positive")
	}
	if c.Chart.MaxPerDay > 24 {
		return fmt.Errorf("max_per_day must be at most 24, got %d", c.Chart.MaxPerDay)
	}
	if c.Chart.SleepColor != "" && !strings.HasPrefix(c.Chart.SleepColor, "--") {
		return fmt.Errorf("sleep_color must be a CSS custom property like --sleep-color, got %q", c.Chart.SleepColor)
	}
	if _, err := gradient.ParseHex(c.Chart.SleepHex); err != nil {
		return fmt.Errorf("sleep_hex: %w", err)
	}
	if _, err := gradient.ParseHex(c.Chart.HeatColor); err != nil {
		return fmt.Errorf("heat_color: %w", err)
	}
	if c.UI.ColumnWidth < 1 {
		return errors.New("column_width must be at least 1")
	}
	if c.UI.Rows < 0 {
		return errors.New("rows must not be negative")
	}
	return nil
}

// ChartOptions returns the chart build options described by the config.
func (c *Config) ChartOptions() (chart.Options, error) {
	palette, err := chart.NewPalette(c.Chart.SleepColor, c.Chart.SleepHex, c.Chart.HeatColor)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{Palette: palette, MaxPerDay: c.Chart.MaxPerDay}, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
