package sensor

import "github.com/joeydtaylor/metronome/pkg/internal/types"

// WithComponentMetadata sets the component metadata for the Sensor.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}

// WithLogger registers loggers for the sensor.
func WithLogger(l ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(l...)
	}
}

// WithMeter attaches meters so events feed metric counts.
func WithMeter(m ...types.Meter) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectMeter(m...)
	}
}

// WithOnStartFunc registers start callbacks.
func WithOnStartFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStart(callback...)
	}
}

// WithOnStopFunc registers stop callbacks.
func WithOnStopFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStop(callback...)
	}
}

// WithOnRestartFunc registers restart callbacks.
func WithOnRestartFunc(callback ...func(types.ComponentMetadata)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRestart(callback...)
	}
}

// WithOnSampleIngestedFunc registers per-sample ingestion callbacks.
func WithOnSampleIngestedFunc(callback ...func(types.ComponentMetadata, types.Wrist, types.Sample)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSampleIngested(callback...)
	}
}

// WithOnSampleEvictedFunc registers window-eviction callbacks.
func WithOnSampleEvictedFunc(callback ...func(types.ComponentMetadata, types.Wrist, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnSampleEvicted(callback...)
	}
}

// WithOnAnalysisCompleteFunc registers analysis-pass callbacks.
func WithOnAnalysisCompleteFunc(callback ...func(types.ComponentMetadata, types.SessionAnalysis)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnAnalysisComplete(callback...)
	}
}

// WithOnAnalysisSkippedFunc registers callbacks for passes skipped on
// insufficient data.
func WithOnAnalysisSkippedFunc(callback ...func(types.ComponentMetadata, int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnAnalysisSkipped(callback...)
	}
}

// WithOnErrorFunc registers error callbacks.
func WithOnErrorFunc(callback ...func(types.ComponentMetadata, error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnError(callback...)
	}
}
