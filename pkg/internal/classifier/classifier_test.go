package classifier_test

import (
	"testing"

	"github.com/joeydtaylor/metronome/pkg/internal/classifier"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  types.Severity
	}{
		{0.0, types.SeverityNone},
		{0.1, types.SeverityNone}, // lower bound exclusive
		{0.10000001, types.SeverityLow},
		{0.25, types.SeverityLow},
		{0.40, types.SeverityLow}, // lower bound exclusive
		{0.40000001, types.SeverityMedium},
		{0.55, types.SeverityMedium},
		{0.70, types.SeverityMedium}, // lower bound exclusive
		{0.7000001, types.SeverityHigh},
		{0.99, types.SeverityHigh},
		{1.0, types.SeverityHigh},
	}
	for _, tc := range tests {
		if got := classifier.Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i <= 100; i++ {
		score := float64(i) / 100
		first := classifier.Classify(score)
		for r := 0; r < 3; r++ {
			if got := classifier.Classify(score); got != first {
				t.Fatalf("Classify(%v) not deterministic: %v then %v", score, first, got)
			}
		}
		switch first {
		case types.SeverityNone, types.SeverityLow, types.SeverityMedium, types.SeverityHigh:
		default:
			t.Fatalf("Classify(%v) returned unknown severity %v", score, first)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(types.SeverityHigh > types.SeverityMedium &&
		types.SeverityMedium > types.SeverityLow &&
		types.SeverityLow > types.SeverityNone) {
		t.Fatalf("severity ordering broken")
	}
	if got := types.MaxSeverity(types.SeverityLow, types.SeverityHigh); got != types.SeverityHigh {
		t.Fatalf("MaxSeverity: expected HIGH, got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := classifier.Describe(types.SeverityHigh); got != "Strong repetitive motion patterns detected" {
		t.Fatalf("unexpected HIGH description: %q", got)
	}
	if got := classifier.Describe(types.Severity(42)); got != classifier.Describe(types.SeverityNone) {
		t.Fatalf("unknown severity should fall back to NONE description, got %q", got)
	}
}

func TestRecommendations_FixedPerLabelAndCopied(t *testing.T) {
	high := classifier.Recommendations(types.SeverityHigh)
	if len(high) == 0 {
		t.Fatalf("expected HIGH recommendations")
	}
	none := classifier.Recommendations(types.SeverityNone)
	if len(none) != 1 || none[0] != "No action needed" {
		t.Fatalf("unexpected NONE recommendations: %v", none)
	}

	high[0] = "mutated"
	if classifier.Recommendations(types.SeverityHigh)[0] == "mutated" {
		t.Fatalf("Recommendations must return a copy")
	}
}

func TestEvaluate(t *testing.T) {
	res := classifier.Evaluate(0.85)
	if res.Severity != types.SeverityHigh {
		t.Fatalf("expected HIGH, got %v", res.Severity)
	}
	if res.Description == "" || len(res.Recommendations) == 0 {
		t.Fatalf("expected populated description and recommendations: %+v", res)
	}
}
