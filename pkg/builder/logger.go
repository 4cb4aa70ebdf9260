package builder

import (
	internalLogger "github.com/joeydtaylor/metronome/pkg/internal/internallogger"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/logschema"
)

type LoggerOption = internalLogger.LoggerOption

type SinkConfig = types.SinkConfig

type SinkType = types.SinkType

const (
	FileSink   SinkType = types.FileSink
	StdoutSink SinkType = types.StdoutSink
)

// Log schema constants for the standard Metronome log format.
const (
	LogSchemaID    = logschema.SchemaID
	LogFieldSchema = logschema.FieldSchema
)

// NewLogger creates a structured logger.
func NewLogger(options ...internalLogger.LoggerOption) types.Logger {
	return internalLogger.NewLogger(options...)
}

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return internalLogger.LoggerWithLevel(levelStr)
}

// LoggerWithDevelopment enables or disables development mode.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return internalLogger.LoggerWithDevelopment(dev)
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return internalLogger.LoggerWithFields(fields)
}

// LoggerWithSchema overrides the log schema identifier field.
func LoggerWithSchema(schema string) LoggerOption {
	return internalLogger.LoggerWithSchema(schema)
}
