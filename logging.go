package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// newLogger opens the log file named by the config. The terminal belongs to
// the UI, so with no log file configured nothing is logged at all.
func newLogger(config *Config) (zerolog.Logger, io.Closer, error) {
	if config.LogFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: level %q: %w", config.LogLevel, err)
	}
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: open log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Str("app", "pitchboard").Logger()
	return logger, f, nil
}
