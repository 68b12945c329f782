package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/config"
)

const sampleLog = "08:00-13:00\n\n01:00-07:00, 13:00-14:00\n"

func execute(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	DisableColor()

	app := NewApp(cfg)
	var out bytes.Buffer
	app.root.SetOut(&out)
	app.root.SetErr(&out)
	app.root.SetIn(strings.NewReader(stdin))
	app.root.SetArgs(args)

	err := app.Execute()
	return out.String(), err
}

func writeLog(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sleep.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRenderCmd_JSON(t *testing.T) {
	out, err := execute(t, config.Default(), sampleLog, "render", "--json", "-")
	require.NoError(t, err)

	var got Rendered
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want := chart.Build(sampleLog, chart.DefaultOptions())
	require.Len(t, got.Days, 2)

	assert.Equal(t, 1, got.Days[0].Line)
	assert.Equal(t, []string{"08:00-13:00"}, got.Days[0].Ranges)
	assert.Equal(t, "05:00", got.Days[0].Total)
	assert.Equal(t, want.Columns[0].Gradient.String(), got.Days[0].Gradient)
	assert.Equal(t, want.Columns[0].TotalDurationGradient.String(), got.Days[0].TotalGradient)

	assert.Equal(t, 3, got.Days[1].Line)
	assert.Equal(t, []string{"01:00-07:00", "13:00-14:00"}, got.Days[1].Ranges)
	assert.Equal(t, "07:00", got.Days[1].Total)

	assert.Equal(t, want.HeatMapGradient.String(), got.HeatMap)
	assert.Equal(t, "Average: 06:00", got.Average)
	assert.Equal(t, 18, got.MaxHours)
}

func TestRenderCmd_Text(t *testing.T) {
	path := writeLog(t, "00:00-06:00")

	out, err := execute(t, config.Default(), "", "render", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Day 1 (line 1, 06:00)")
	assert.Contains(t, out, "  gradient: 180deg, rgba(255, 255, 255, 0) 0%, rgba(255, 255, 255, 0) 0%, var(--sleep-color) 0%, var(--sleep-color) 25%, rgba(255, 255, 255, 0) 25%")
	assert.Contains(t, out, "Heat map (Average: 06:00)")
	assert.Contains(t, out, "  gradient: 180deg, rgba(136, 153, 238, 0.00) 0%, rgba(136, 153, 238, 0.00) 0.00%, rgba(136, 153, 238, 1.00) 0.00%")
}

func TestRenderCmd_ConfiguredInput(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Path = writeLog(t, "22:00-23:00")

	out, err := execute(t, cfg, "", "render", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": "01:00"`)
}

func TestRenderCmd_EmptyLog(t *testing.T) {
	out, err := execute(t, config.Default(), "", "render")
	require.NoError(t, err)

	assert.Contains(t, out, "No days in log.")
	assert.Contains(t, out, "Heat map (Average: NaN:NaN)")
}

func TestRenderCmd_MissingFile(t *testing.T) {
	_, err := execute(t, config.Default(), "", "render", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestRenderCmd_CustomPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Chart.SleepColor = ""
	cfg.Chart.SleepHex = "#ff0000"

	out, err := execute(t, cfg, "00:00-12:00", "render", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "rgba(255, 0, 0, 1) 0%")
	assert.NotContains(t, out, "var(--sleep-color)")
}

func TestStatsCmd(t *testing.T) {
	out, err := execute(t, config.Default(), sampleLog+"foo\n", "stats", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "SLEEP LOG: 3 days")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "08:00-13:00")
	assert.Contains(t, out, "01:00-07:00, 13:00-14:00")
	assert.Contains(t, out, "NaN:NaN")
	assert.Contains(t, out, "Average: NaN:NaN  |  Shortest: 05:00  |  Longest: 07:00")
	assert.Contains(t, out, "Most often asleep: 13:00-13:15 (2 of 3 days)")
	assert.Contains(t, out, "Unparsed days: 1")
}

func TestStatsCmd_Empty(t *testing.T) {
	out, err := execute(t, config.Default(), "\n\n", "stats")
	require.NoError(t, err)
	assert.Equal(t, "No days in log.\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, config.Default(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "somno dev (commit: none)\n", out)
}

func TestReadLog(t *testing.T) {
	text, err := readLog(strings.NewReader("08:00-09:00"), "-")
	require.NoError(t, err)
	assert.Equal(t, "08:00-09:00", text)

	_, err = readLog(nil, "-")
	assert.ErrorIs(t, err, ErrNoInput)

	text, err = readLog(nil, writeLog(t, "01:00-02:00\n"))
	require.NoError(t, err)
	assert.Equal(t, "01:00-02:00\n", text)
}
