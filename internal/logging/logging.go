// Package logging provides the structured logger used for the
// generator's soft-failure and fallback diagnostics (corridor stalls,
// preset-loading fallbacks). It follows the configuration shape the rest
// of this corpus uses for logrus-backed loggers.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level is the minimum severity a logger will emit.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Format is the output encoding for log entries.
type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

// Config configures a logger built by New.
type Config struct {
	Level  Level
	Format Format
}

// DefaultConfig returns a sensible default: info level, text format.
func DefaultConfig() Config {
	return Config{Level: InfoLevel, Format: TextFormat}
}

// New builds a configured *logrus.Logger writing to stderr.
func New(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.Format == JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FullTimestamp:   true,
		})
	}
	return logger
}

func parseLevel(l Level) logrus.Level {
	switch l {
	case DebugLevel:
		return logrus.DebugLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
