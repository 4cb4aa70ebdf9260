package session_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/metronome/pkg/internal/session"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

func wrist(w types.Wrist, score float64, severity types.Severity) *types.WristAnalysis {
	return &types.WristAnalysis{
		Wrist:          w,
		OverallScore:   score,
		Classification: severity,
		SampleCount:    100,
	}
}

func TestAggregate_NoWristsHasNoSummary(t *testing.T) {
	got := session.Aggregate("s-1", nil, nil)
	if got.Summary != nil {
		t.Fatalf("expected absent summary for zero wrists, got %+v", got.Summary)
	}
	if got.LeftWrist != nil || got.RightWrist != nil {
		t.Fatalf("expected nil wrists")
	}
	if got.SessionID != "s-1" {
		t.Fatalf("expected session id to carry through, got %q", got.SessionID)
	}

	if _, ok := session.MotionSummary(got); ok {
		t.Fatalf("expected no motion summary without a session summary")
	}
}

func TestAggregate_SingleWrist(t *testing.T) {
	left := wrist(types.WristLeft, 0.8, types.SeverityHigh)
	got := session.Aggregate("s-2", left, nil)

	if got.Summary == nil {
		t.Fatalf("expected summary for one wrist")
	}
	if got.Summary.OverallScore != 0.8 {
		t.Fatalf("expected overall score 0.8, got %v", got.Summary.OverallScore)
	}
	if got.Summary.WristCount != 1 {
		t.Fatalf("expected wrist count 1, got %d", got.Summary.WristCount)
	}
	if got.Summary.Classification != types.SeverityHigh {
		t.Fatalf("expected HIGH, got %v", got.Summary.Classification)
	}
}

func TestAggregate_BothWristsMeanAndReclassify(t *testing.T) {
	// 0.9 (HIGH) and 0.3 (LOW) average to 0.6, which re-classifies MEDIUM
	// rather than taking the more severe per-wrist label.
	left := wrist(types.WristLeft, 0.9, types.SeverityHigh)
	right := wrist(types.WristRight, 0.3, types.SeverityLow)

	got := session.Aggregate("s-3", left, right)
	if got.Summary == nil {
		t.Fatalf("expected summary")
	}
	if math.Abs(got.Summary.OverallScore-0.6) > 1e-12 {
		t.Fatalf("expected mean 0.6, got %v", got.Summary.OverallScore)
	}
	if got.Summary.Classification != types.SeverityMedium {
		t.Fatalf("expected MEDIUM from averaged score, got %v", got.Summary.Classification)
	}
	if got.Summary.WristCount != 2 {
		t.Fatalf("expected wrist count 2, got %d", got.Summary.WristCount)
	}

	// Per-wrist labels stay independently derived.
	if got.LeftWrist.Classification != types.SeverityHigh || got.RightWrist.Classification != types.SeverityLow {
		t.Fatalf("per-wrist labels must be preserved")
	}
}

func TestMotionSummary(t *testing.T) {
	got := session.Aggregate("s-4", wrist(types.WristLeft, 0.8, types.SeverityHigh), nil)
	summary, ok := session.MotionSummary(got)
	if !ok {
		t.Fatalf("expected motion summary")
	}
	if !summary.HasRepetitiveMotion {
		t.Fatalf("expected repetitive motion flagged for HIGH")
	}
	if summary.Severity != types.SeverityHigh {
		t.Fatalf("expected HIGH, got %v", summary.Severity)
	}
	if len(summary.Recommendations) == 0 {
		t.Fatalf("expected recommendations for HIGH")
	}

	quiet := session.Aggregate("s-5", wrist(types.WristLeft, 0.05, types.SeverityNone), nil)
	summary, ok = session.MotionSummary(quiet)
	if !ok {
		t.Fatalf("expected motion summary for quiet session")
	}
	if summary.HasRepetitiveMotion {
		t.Fatalf("expected no repetitive motion for NONE")
	}
}
