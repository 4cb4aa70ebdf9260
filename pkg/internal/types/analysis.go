package types

// Severity is the ordinal classification of repetitive-motion strength.
// Ordering is significant: SeverityNone < SeverityLow < SeverityMedium < SeverityHigh.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "HIGH"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityLow:
		return "LOW"
	default:
		return "NONE"
	}
}

// MaxSeverity returns the more severe of two labels.
func MaxSeverity(a, b Severity) Severity {
	if a > b {
		return a
	}
	return b
}

// Peak is a local maximum in the frequency-magnitude spectrum.
type Peak struct {
	Freq      float64 // Hertz, always >= 0.
	Magnitude float64 // Spectral magnitude, always >= 0.
}

// AxisAnalysis is the spectral result for one axis of one wrist. Peaks are
// ordered by descending magnitude, capped at the analyzer's peak limit, and
// filtered to the physiologically plausible band.
type AxisAnalysis struct {
	Peaks     []Peak
	Score     float64 // Repetitiveness score in [0, 1].
	PeakCount int
}

// WristAnalysis combines the Y and Z axis results for one wrist. The lateral
// X axis is excluded from the overall score; it is not part of the flapping
// signature this pipeline targets.
type WristAnalysis struct {
	Wrist          Wrist
	YAxis          AxisAnalysis
	ZAxis          AxisAnalysis
	OverallScore   float64
	Classification Severity
	Description    string
	SampleCount    int
}

// SessionSummary is the whole-session roll-up across contributing wrists.
type SessionSummary struct {
	OverallScore   float64
	Classification Severity
	Description    string
	WristCount     int
}

// SessionAnalysis is an immutable snapshot of a full analysis pass. A nil
// wrist pointer means that wrist had insufficient data; a nil Summary means
// no wrist contributed at all, which is distinct from a NONE-classified
// summary. Callers must check for presence before reading fields.
type SessionAnalysis struct {
	SessionID  string
	LeftWrist  *WristAnalysis
	RightWrist *WristAnalysis
	Summary    *SessionSummary
}

// MotionSummary is the condensed view consumed by downstream collaborators
// such as the adaptive-question engine and the report generator.
type MotionSummary struct {
	HasRepetitiveMotion bool
	Severity            Severity
	Recommendations     []string
}
