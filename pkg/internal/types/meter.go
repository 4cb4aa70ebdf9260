package types

import "context"

// Metric name constants tracked by the Meter during a live session.
const (
	MetricSampleIngestCount   = "sample_ingest_count"
	MetricSampleEvictionCount = "sample_eviction_count"
	MetricAnalysisPassCount   = "analysis_pass_count"
	MetricAnalysisSkipCount   = "analysis_skip_count"
	MetricAnalysisTickCount   = "analysis_tick_count"
	MetricPeakExtractionCount = "peak_extraction_count"

	MetricCurrentCpuPercentage = "current_cpu_percentage"
	MetricCurrentRamPercentage = "current_ram_percentage"
)

// Meter counts pipeline activity and periodically renders a live snapshot of
// counts plus host CPU/RAM usage until its context is cancelled or the
// configured idle timeout elapses.
type Meter interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	IncrementCount(metricName string)
	AddToCount(metricName string, delta uint64)
	GetMetricCount(metricName string) uint64
	SetMetricCount(metricName string, count uint64)
	SetMetricPercentage(metricName string, value float64)
	GetMetricPercentage(metricName string) float64

	// ReportData signals activity to reset the idle timer.
	ReportData()

	// Monitor blocks, rendering periodic snapshots until cancellation or idle
	// timeout.
	Monitor(ctx context.Context)
}
