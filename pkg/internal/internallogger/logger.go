package internallogger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap config, base level, and caller depth before
// the adapter is constructed.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap, with dynamically
// attachable sinks sharing one atomic level.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	// Apply each provided option to the configuration
	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(level)

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: callerDepth,
		callerOn:    true,
		encConfig:   encConfig,
		baseCore:    zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel),
		baseFields:  fieldsFromMap(config.InitialFields),
		sinks:       make(map[string]sinkEntry),
	}
	z.rebuildLoggerLocked()

	return z
}
