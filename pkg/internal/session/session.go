// Package session rolls per-wrist analyses up into a whole-session summary.
package session

import (
	"github.com/joeydtaylor/metronome/pkg/internal/classifier"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"gonum.org/v1/gonum/stat"
)

// Aggregate combines zero, one, or two wrist analyses into an immutable
// SessionAnalysis. The summary score is the mean of the contributing wrists'
// overall scores, re-classified through the classifier rather than by taking
// the more severe per-wrist label; per-wrist labels remain independently
// derived. With zero wrists no summary is produced at all; absence is
// distinct from a NONE-classified summary.
func Aggregate(sessionID string, left, right *types.WristAnalysis) types.SessionAnalysis {
	analysis := types.SessionAnalysis{
		SessionID:  sessionID,
		LeftWrist:  left,
		RightWrist: right,
	}

	var scores []float64
	if left != nil {
		scores = append(scores, left.OverallScore)
	}
	if right != nil {
		scores = append(scores, right.OverallScore)
	}
	if len(scores) == 0 {
		return analysis
	}

	overall := stat.Mean(scores, nil)
	severity := classifier.Classify(overall)
	analysis.Summary = &types.SessionSummary{
		OverallScore:   overall,
		Classification: severity,
		Description:    classifier.Describe(severity),
		WristCount:     len(scores),
	}
	return analysis
}

// MotionSummary derives the condensed downstream view from a session
// analysis. The boolean is false when the analysis carries no summary.
func MotionSummary(analysis types.SessionAnalysis) (types.MotionSummary, bool) {
	if analysis.Summary == nil {
		return types.MotionSummary{}, false
	}
	severity := analysis.Summary.Classification
	return types.MotionSummary{
		HasRepetitiveMotion: severity > types.SeverityNone,
		Severity:            severity,
		Recommendations:     classifier.Recommendations(severity),
	}, true
}
