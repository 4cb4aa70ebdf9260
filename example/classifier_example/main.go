package main

import (
	"fmt"

	"github.com/joeydtaylor/metronome/pkg/builder"
)

// Walks the severity bands with representative scores and prints the fixed
// description and recommendations for each.
func main() {
	for _, score := range []float64{0.05, 0.25, 0.55, 0.85} {
		result := builder.Evaluate(score)
		fmt.Printf("score %.2f -> %s: %s\n", score, result.Severity, result.Description)
		for _, r := range result.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}

	// Aggregation over one contributing wrist: the summary re-classifies the
	// mean score rather than reusing the wrist label.
	left := &builder.WristAnalysis{
		Wrist:          builder.WristLeft,
		OverallScore:   0.8,
		Classification: builder.Classify(0.8),
		Description:    builder.Describe(builder.Classify(0.8)),
		SampleCount:    100,
	}
	analysis := builder.Aggregate("session-demo", left, nil)
	if summary, ok := builder.DeriveMotionSummary(analysis); ok {
		fmt.Printf("\nsession summary: severity=%s repetitive=%v\n", summary.Severity, summary.HasRepetitiveMotion)
	}
}
