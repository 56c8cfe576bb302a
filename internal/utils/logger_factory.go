package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

const (
	// LogFormatStructured emits JSON lines.
	LogFormatStructured LogFormat = "structured"
	// LogFormatConsole emits human-readable lines.
	LogFormatConsole LogFormat = "console"
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: "json",
	LogFormatConsole:    "console",
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	// OutputPaths overrides the sinks; stderr when empty.
	OutputPaths []string
}

// NewLoggerFactory constructs a logger factory writing to stderr.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested level and format.
func (factory *LoggerFactory) CreateLogger(level LogLevel, format LogFormat) (*zap.Logger, error) {
	zapLevel, ok := logLevelMapping[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log level: %s", level)
	}
	encoding, ok := logFormatEncodingMapping[format]
	if !ok {
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLevel)
	configuration.Encoding = encoding
	if format == LogFormatConsole {
		configuration.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if len(factory.OutputPaths) > 0 {
		configuration.OutputPaths = append([]string(nil), factory.OutputPaths...)
		configuration.ErrorOutputPaths = append([]string(nil), factory.OutputPaths...)
	}

	return configuration.Build()
}
