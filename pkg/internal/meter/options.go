package meter

import (
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// WithComponentMetadata sets the component metadata for the Meter.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithLogger adds loggers to the Meter for outputting logs.
func WithLogger(loggers ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(loggers...)
	}
}

// WithInitialMetricCount sets an initial count for a specific metric.
func WithInitialMetricCount(metricName string, count uint64) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetMetricCount(metricName, count)
	}
}

// WithUpdateInterval sets the display refresh interval.
func WithUpdateInterval(interval time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if concrete, ok := m.(*Meter); ok && interval > 0 {
			concrete.updateInterval = interval
		}
	}
}

// WithIdleTimeout sets how long the monitor runs without activity before
// shutting down.
func WithIdleTimeout(timeout time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if concrete, ok := m.(*Meter); ok && timeout > 0 {
			concrete.idleTimeout = timeout
		}
	}
}
