package builder

import (
	"github.com/joeydtaylor/metronome/pkg/internal/sensor"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// NewSensor creates a sensor for observing detector events.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithMeter attaches meters so detector events also feed metric counts.
func SensorWithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(meter...)
}

// SensorWithOnStartFunc registers a callback for the OnStart event.
func SensorWithOnStartFunc(callback ...func(ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnStartFunc(callback...)
}

// SensorWithOnStopFunc registers a callback for the OnStop event.
func SensorWithOnStopFunc(callback ...func(ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnStopFunc(callback...)
}

// SensorWithOnRestartFunc registers a callback for the OnRestart event.
func SensorWithOnRestartFunc(callback ...func(ComponentMetadata)) types.Option[types.Sensor] {
	return sensor.WithOnRestartFunc(callback...)
}

// SensorWithOnSampleIngestedFunc registers a callback for the OnSampleIngested event.
func SensorWithOnSampleIngestedFunc(callback ...func(ComponentMetadata, Wrist, Sample)) types.Option[types.Sensor] {
	return sensor.WithOnSampleIngestedFunc(callback...)
}

// SensorWithOnSampleEvictedFunc registers a callback for the OnSampleEvicted event.
func SensorWithOnSampleEvictedFunc(callback ...func(ComponentMetadata, Wrist, int)) types.Option[types.Sensor] {
	return sensor.WithOnSampleEvictedFunc(callback...)
}

// SensorWithOnAnalysisCompleteFunc registers a callback for the OnAnalysisComplete event.
func SensorWithOnAnalysisCompleteFunc(callback ...func(ComponentMetadata, SessionAnalysis)) types.Option[types.Sensor] {
	return sensor.WithOnAnalysisCompleteFunc(callback...)
}

// SensorWithOnAnalysisSkippedFunc registers a callback for the OnAnalysisSkipped event.
func SensorWithOnAnalysisSkippedFunc(callback ...func(ComponentMetadata, int)) types.Option[types.Sensor] {
	return sensor.WithOnAnalysisSkippedFunc(callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc(callback ...func(ComponentMetadata, error)) types.Option[types.Sensor] {
	return sensor.WithOnErrorFunc(callback...)
}
