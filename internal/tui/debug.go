package tui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/somno/internal/chart"
	"github.com/javiermolinar/somno/internal/sleeplog"
)

// DebugLogger logs TUI keystrokes and recomputations to a file.
type DebugLogger struct {
	logger  *zap.Logger
	enabled bool
	seq     atomic.Int64
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "somno-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{logger: zap.NewNop()}
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{DebugLogPath}
	cfg.ErrorOutputPaths = []string{DebugLogPath}
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(logger)
	debugLog.log("DEBUG_START", zap.String("log_file", DebugLogPath))
	return nil
}

func newDebugLogger(logger *zap.Logger) *DebugLogger {
	return &DebugLogger{logger: logger, enabled: true}
}

// CloseDebugLogger flushes the debug log.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.enabled {
		debugLog.log("DEBUG_END")
		_ = debugLog.logger.Sync()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, fields ...zap.Field) {
	if d == nil || !d.enabled {
		return
	}
	fields = append(fields, zap.Int64("seq", d.seq.Add(1)))
	d.logger.Debug(event, fields...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS",
		zap.String("key", msg.String()),
		zap.String("type", fmt.Sprintf("%d", msg.Type)),
	)
}

// LogRecompute logs a chart rebuilt from new input text.
func LogRecompute(c chart.Chart) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	ranges, invalid := 0, 0
	for _, col := range c.Columns {
		ranges += len(col.Day.Ranges)
		if !col.TotalDuration.Valid() {
			invalid++
		}
	}
	debugLog.log("RECOMPUTE",
		zap.Int("days", len(c.Columns)),
		zap.Int("ranges", ranges),
		zap.Int("invalid_days", invalid),
		zap.Int("heat_max", c.HeatMap.Max()),
		zap.String("average", sleeplog.FormatDuration(c.Average)),
	)
}

// LogCopy logs a clipboard copy.
func LogCopy(what string, n int) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("COPY", zap.String("what", what), zap.Int("bytes", n))
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", zap.String("context", context), zap.Error(err))
}
