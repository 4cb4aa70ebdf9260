package types

// Sensor provides callback hooks for detector telemetry. Callbacks are
// registered before the detector starts and invoked as the matching events
// occur during ingestion and analysis.
type Sensor interface {
	ConnectLogger(...Logger)
	ConnectMeter(...Meter)
	GetMeters() []Meter

	// GetComponentMetadata retrieves metadata about the Sensor, including identifiers like name and ID,
	// useful for logging and monitoring purposes.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets the metadata for the Sensor, such as its name and ID.
	SetComponentMetadata(name string, id string)

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	RegisterOnStart(...func(ComponentMetadata))
	InvokeOnStart(ComponentMetadata)

	RegisterOnStop(...func(ComponentMetadata))
	InvokeOnStop(ComponentMetadata)

	RegisterOnRestart(...func(ComponentMetadata))
	InvokeOnRestart(ComponentMetadata)

	// Sample ingestion hooks. Eviction reports how many samples fell out of
	// the window as a result of one append.
	RegisterOnSampleIngested(...func(ComponentMetadata, Wrist, Sample))
	InvokeOnSampleIngested(ComponentMetadata, Wrist, Sample)
	RegisterOnSampleEvicted(...func(ComponentMetadata, Wrist, int))
	InvokeOnSampleEvicted(ComponentMetadata, Wrist, int)

	// Analysis pass hooks. A skipped pass reports the combined sample count
	// that fell short of the configured minimum.
	RegisterOnAnalysisComplete(...func(ComponentMetadata, SessionAnalysis))
	InvokeOnAnalysisComplete(ComponentMetadata, SessionAnalysis)
	RegisterOnAnalysisSkipped(...func(ComponentMetadata, int))
	InvokeOnAnalysisSkipped(ComponentMetadata, int)

	RegisterOnError(...func(ComponentMetadata, error))
	InvokeOnError(ComponentMetadata, error)
}
