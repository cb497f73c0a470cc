// Package logging builds the zap logger shared by the CLI components.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger level and encoding.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	Output io.Writer
}

// ParseLevel maps a level name onto a zapcore.Level. Empty means warn.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.WarnLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.WarnLevel, fmt.Errorf("logging: invalid level %q: %w", name, err)
	}
	return level, nil
}

// New builds a logger. When opts.Output is set the logger writes there
// instead of stderr.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.Development = false
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("logging: invalid format %q", opts.Format)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if opts.Output == nil {
		logger, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("logging: build logger: %w", err)
		}
		return logger, nil
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(opts.Output), cfg.Level)
	return zap.New(core), nil
}
