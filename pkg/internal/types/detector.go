package types

import "context"

// Detector is the real-time controller for one screening session. It owns the
// per-wrist sliding windows, re-runs the analysis pipeline on a periodic tick,
// and publishes immutable SessionAnalysis snapshots.
type Detector interface {
	// AddSample ingests one wrist position. Samples beyond the configured
	// window size evict the oldest entries first.
	AddSample(wrist Wrist, sample Sample)

	// Analyze runs a full analysis pass immediately over the current window
	// contents and publishes the resulting snapshot. It is what a timer tick
	// invokes; tests call it directly for deterministic tick advancement.
	Analyze() SessionAnalysis

	// Latest returns the most recently published snapshot. The boolean is
	// false until the first pass has produced one.
	Latest() (SessionAnalysis, bool)

	// Summary derives the condensed downstream view from the latest snapshot.
	// The boolean is false when no summary has been produced yet.
	Summary() (MotionSummary, bool)

	Start(ctx context.Context) error
	Stop() error
	Restart(ctx context.Context) error
	IsStarted() bool

	// SessionID identifies this detector's screening session in snapshots,
	// log lines, and downstream reports.
	SessionID() string

	// WindowLen reports the current number of buffered samples for a wrist.
	WindowLen(wrist Wrist) int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	ConnectMeter(...Meter)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
