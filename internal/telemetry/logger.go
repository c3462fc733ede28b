// Package telemetry provides the engine's ambient logging and metrics
// stack: a zap logger wrapped with a Prometheus metrics hook, grounded on
// 23skdu-longbow's internal/logging package.
package telemetry

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration options.
type Config struct {
	// Format is "json" or "text".
	Format string
	// Level is one of debug/info/warn/error.
	Level string
	// Output defaults to os.Stdout.
	Output zapcore.WriteSyncer
}

// DefaultConfig returns the engine's default logger configuration.
func DefaultConfig() Config {
	return Config{Format: "json", Level: "info", Output: os.Stdout}
}

// NewLogger builds a zap.Logger per cfg, wrapped with a Prometheus metrics
// hook that counts log entries by level.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "timestamp"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := &metricsHookCore{Core: zapcore.NewCore(encoder, output, level)}

	return zap.New(core, zap.AddCaller()), nil
}

// DiscardLogger returns a logger that discards all output, for tests.
func DiscardLogger() *zap.Logger { return zap.NewNop() }

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("telemetry: invalid log level %q", level)
	}
}

// metricsHookCore wraps a zapcore.Core, incrementing LogEntriesTotal (and
// LogErrorsTotal for error+) on every write.
type metricsHookCore struct {
	zapcore.Core
}

//nolint:gocritic // zapcore.Core's method signature takes Entry by value
func (c *metricsHookCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}

	return checked
}

//nolint:gocritic // zapcore.Core's method signature takes Entry by value
func (c *metricsHookCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	LogEntriesTotal.WithLabelValues(entry.Level.String()).Inc()
	if entry.Level >= zapcore.ErrorLevel {
		LogErrorsTotal.Inc()
	}

	return c.Core.Write(entry, fields)
}

func (c *metricsHookCore) With(fields []zapcore.Field) zapcore.Core {
	return &metricsHookCore{Core: c.Core.With(fields)}
}
