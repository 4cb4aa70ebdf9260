// Package builder is the public assembly surface for Metronome. It re-exports
// the internal component constructors, options, and shared types so callers
// compose a detection pipeline from one import.
package builder

import (
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

type Option[T any] = types.Option[T]

type Band = types.Band

type Wrist = types.Wrist

type Axis = types.Axis

type Sample = types.Sample

type Severity = types.Severity

type Peak = types.Peak

type AxisAnalysis = types.AxisAnalysis

type WristAnalysis = types.WristAnalysis

type SessionSummary = types.SessionSummary

type SessionAnalysis = types.SessionAnalysis

type MotionSummary = types.MotionSummary

type Detector = types.Detector

type Sensor = types.Sensor

type Meter = types.Meter

type Logger = types.Logger

type LogLevel = types.LogLevel

const (
	WristLeft  Wrist = types.WristLeft
	WristRight Wrist = types.WristRight
)

const (
	AxisX Axis = types.AxisX
	AxisY Axis = types.AxisY
	AxisZ Axis = types.AxisZ
)

const (
	SeverityNone   Severity = types.SeverityNone
	SeverityLow    Severity = types.SeverityLow
	SeverityMedium Severity = types.SeverityMedium
	SeverityHigh   Severity = types.SeverityHigh
)

const (
	DebugLevel  LogLevel = types.DebugLevel
	InfoLevel   LogLevel = types.InfoLevel
	WarnLevel   LogLevel = types.WarnLevel
	ErrorLevel  LogLevel = types.ErrorLevel
	DPanicLevel LogLevel = types.DPanicLevel
	PanicLevel  LogLevel = types.PanicLevel
	FatalLevel  LogLevel = types.FatalLevel
)

// MaxSeverity returns the more severe of two labels.
func MaxSeverity(a, b Severity) Severity {
	return types.MaxSeverity(a, b)
}
