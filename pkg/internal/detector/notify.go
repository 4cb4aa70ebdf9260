package detector

import (
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// NotifyLoggers sends a log message to all attached loggers at the specified
// level, skipping loggers whose configured level would drop it.
func (d *RealTimeDetector) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	d.loggersLock.Lock()
	loggers := append([]types.Logger(nil), d.loggers...)
	d.loggersLock.Unlock()

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if lc, ok := logger.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}

		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}
