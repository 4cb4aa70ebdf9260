package builder

import (
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/meter"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

// Re-exported metric name constants.
const (
	MetricSampleIngestCount    MetricName = MetricName(types.MetricSampleIngestCount)
	MetricSampleEvictionCount  MetricName = MetricName(types.MetricSampleEvictionCount)
	MetricAnalysisPassCount    MetricName = MetricName(types.MetricAnalysisPassCount)
	MetricAnalysisSkipCount    MetricName = MetricName(types.MetricAnalysisSkipCount)
	MetricAnalysisTickCount    MetricName = MetricName(types.MetricAnalysisTickCount)
	MetricPeakExtractionCount  MetricName = MetricName(types.MetricPeakExtractionCount)
	MetricCurrentCpuPercentage MetricName = MetricName(types.MetricCurrentCpuPercentage)
	MetricCurrentRamPercentage MetricName = MetricName(types.MetricCurrentRamPercentage)
)

// NewMeter creates a meter for counting pipeline activity.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(logger...)
}

// MeterWithInitialMetricCount sets an initial count for a specific metric.
func MeterWithInitialMetricCount(metricName MetricName, count uint64) types.Option[types.Meter] {
	return meter.WithInitialMetricCount(string(metricName), count)
}

// MeterWithUpdateInterval sets the display refresh interval.
func MeterWithUpdateInterval(interval time.Duration) types.Option[types.Meter] {
	return meter.WithUpdateInterval(interval)
}

// MeterWithIdleTimeout sets the monitor's idle shutdown timeout.
func MeterWithIdleTimeout(timeout time.Duration) types.Option[types.Meter] {
	return meter.WithIdleTimeout(timeout)
}
