// Package classifier maps repetitiveness scores onto ordinal severity labels.
// Everything here is a pure function of its inputs; there is no session or
// detector state, so classification is trivially unit-testable.
package classifier

import "github.com/joeydtaylor/metronome/pkg/internal/types"

// Score thresholds. Each band's lower bound is exclusive: a score of exactly
// 0.7 classifies as MEDIUM, exactly 0.4 as LOW, exactly 0.1 as NONE.
const (
	HighThreshold   = 0.7
	MediumThreshold = 0.4
	LowThreshold    = 0.1
)

var descriptions = map[types.Severity]string{
	types.SeverityHigh:   "Strong repetitive motion patterns detected",
	types.SeverityMedium: "Moderate repetitive motion patterns detected",
	types.SeverityLow:    "Mild repetitive motion patterns detected",
	types.SeverityNone:   "No significant repetitive motion detected",
}

var recommendations = map[types.Severity][]string{
	types.SeverityHigh: {
		"Consider referral for an occupational therapy evaluation",
		"Consult a specialist about repetitive motion behaviors",
		"Document frequency and context of the observed movements",
	},
	types.SeverityMedium: {
		"Continue monitoring across additional sessions",
		"Discuss observations with a healthcare provider at the next visit",
	},
	types.SeverityLow: {
		"Note the observation; no immediate follow-up required",
	},
	types.SeverityNone: {
		"No action needed",
	},
}

// Result bundles a severity label with its fixed description and
// recommendation strings.
type Result struct {
	Severity        types.Severity
	Description     string
	Recommendations []string
}

// Classify maps a score in [0, 1] deterministically onto a severity label.
func Classify(score float64) types.Severity {
	switch {
	case score > HighThreshold:
		return types.SeverityHigh
	case score > MediumThreshold:
		return types.SeverityMedium
	case score > LowThreshold:
		return types.SeverityLow
	default:
		return types.SeverityNone
	}
}

// Describe returns the fixed description for a severity label.
func Describe(severity types.Severity) string {
	if d, ok := descriptions[severity]; ok {
		return d
	}
	return descriptions[types.SeverityNone]
}

// Recommendations returns the fixed recommendation list for a severity label.
// The returned slice is a copy; callers may not mutate the canonical lists.
func Recommendations(severity types.Severity) []string {
	src, ok := recommendations[severity]
	if !ok {
		src = recommendations[types.SeverityNone]
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Evaluate classifies a score and bundles the label with its description and
// recommendations.
func Evaluate(score float64) Result {
	severity := Classify(score)
	return Result{
		Severity:        severity,
		Description:     Describe(severity),
		Recommendations: Recommendations(severity),
	}
}
