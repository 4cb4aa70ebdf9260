package internallogger

import (
	"fmt"
	"strings"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"go.uber.org/zap"
)

// Log emits a log entry at the requested level with structured fields.
func (z *ZapLoggerAdapter) Log(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()

	if logger == nil || logger.Core() == nil {
		fmt.Println("Logger or logger core is not initialized.")
		return
	}

	zapLevel := ConvertLevel(level)
	if !logger.Core().Enabled(zapLevel) {
		return
	}

	limit := len(keysAndValues)
	if limit%2 != 0 {
		limit--
	}

	fields := make([]zap.Field, 0, limit/2)
	for i := 0; i < limit; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		value := keysAndValues[i+1]
		switch v := value.(type) {
		case types.ComponentMetadata:
			fields = append(fields, zap.Any(key, componentToLogMap(v)))
			continue
		case *types.ComponentMetadata:
			if v == nil {
				fields = append(fields, zap.Any(key, nil))
				continue
			}
			fields = append(fields, zap.Any(key, componentToLogMap(*v)))
			continue
		case error:
			fields = append(fields, zap.NamedError(key, v))
			continue
		}
		fields = append(fields, zap.Any(key, value))
	}

	logger.Check(zapLevel, msg).Write(fields...)
}

func componentToLogMap(meta types.ComponentMetadata) map[string]interface{} {
	return map[string]interface{}{
		"id":   meta.ID,
		"type": meta.Type,
		"name": meta.Name,
	}
}

// Debug logs a debug message.
func (z *ZapLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	z.Log(types.DebugLevel, msg, keysAndValues...)
}

// Info logs an informational message.
func (z *ZapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	z.Log(types.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warning message.
func (z *ZapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	z.Log(types.WarnLevel, msg, keysAndValues...)
}

// Error logs an error message.
func (z *ZapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	z.Log(types.ErrorLevel, msg, keysAndValues...)
}

// DPanic logs a critical message.
func (z *ZapLoggerAdapter) DPanic(msg string, keysAndValues ...interface{}) {
	z.Log(types.DPanicLevel, msg, keysAndValues...)
}

// Panic logs a message and panics.
func (z *ZapLoggerAdapter) Panic(msg string, keysAndValues ...interface{}) {
	z.Log(types.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal message.
func (z *ZapLoggerAdapter) Fatal(msg string, keysAndValues ...interface{}) {
	z.Log(types.FatalLevel, msg, keysAndValues...)
}

// GetLevel returns the configured log level.
func (z *ZapLoggerAdapter) GetLevel() types.LogLevel {
	return convertZapLevel(z.atomicLevel.Level())
}

// SetLevel updates the logger's minimum level.
func (z *ZapLoggerAdapter) SetLevel(level types.LogLevel) {
	z.atomicLevel.SetLevel(ConvertLevel(level))
}

// IsLevelEnabled reports whether the given level would be written. Hot paths
// use this to skip building key/value args when nobody is listening.
func (z *ZapLoggerAdapter) IsLevelEnabled(level types.LogLevel) bool {
	return z.atomicLevel.Enabled(ConvertLevel(level))
}

// Flush syncs the logger's outputs.
func (z *ZapLoggerAdapter) Flush() error {
	z.mu.Lock()
	logger := z.logger
	z.mu.Unlock()

	if logger == nil {
		return nil
	}
	if err := logger.Sync(); err != nil && !isConsoleSyncError(err) {
		return err
	}
	return nil
}

// isConsoleSyncError reports the well-known failures of fsync on stdout and
// stderr, which vary by platform and by how the stream is redirected.
func isConsoleSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor") ||
		strings.Contains(msg, "operation not supported")
}
