// Package logging builds the zap logger used across adtax.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yunhoi129/adtax/internal/config"
)

// NewLogger creates a structured logger from the given log settings.
// Output goes to stderr so stdout stays reserved for generated names.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
func NewLogger(cfg config.LogSettings, color bool) (*zap.Logger, error) {
	zapCfg, err := buildConfig(cfg, color)
	if err != nil {
		return nil, err
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewLoggerTo is NewLogger writing to w instead of stderr.
func NewLoggerTo(cfg config.LogSettings, w io.Writer) (*zap.Logger, error) {
	zapCfg, err := buildConfig(cfg, false)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zapCfg.EncoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(zapCfg.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapCfg.Level)
	return zap.New(core), nil
}

func buildConfig(cfg config.LogSettings, color bool) (zap.Config, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Development = false
		zapCfg.DisableStacktrace = true
		if color {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	default:
		return zap.Config{}, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg, nil
}
