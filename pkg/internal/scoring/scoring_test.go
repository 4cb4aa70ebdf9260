package scoring_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/metronome/pkg/internal/scoring"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

func TestScore_EmptyPeaksIsExactlyZero(t *testing.T) {
	e, err := scoring.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine error: %v", err)
	}
	if got := e.Score(nil); got != 0.0 {
		t.Fatalf("expected exactly 0.0 for empty peaks, got %v", got)
	}
	if got := e.Score([]types.Peak{}); got != 0.0 {
		t.Fatalf("expected exactly 0.0 for empty slice, got %v", got)
	}
}

func TestScore_ZeroMaxMagnitudeIsZero(t *testing.T) {
	e, _ := scoring.NewEngine()
	peaks := []types.Peak{{Freq: 2.0, Magnitude: 0}, {Freq: 3.0, Magnitude: 0}}
	got := e.Score(peaks)
	if got != 0.0 || math.IsNaN(got) {
		t.Fatalf("expected 0.0 for zero magnitudes, got %v", got)
	}
}

func TestScore_SingleFlappingBandPeakIsFullWeight(t *testing.T) {
	e, _ := scoring.NewEngine()
	// One peak at 2 Hz: normalized magnitude 1.0 x weight 1.0.
	got := e.Score([]types.Peak{{Freq: 2.0, Magnitude: 5.0}})
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("expected score 1.0, got %v", got)
	}
}

func TestScore_FrequencyWeighting(t *testing.T) {
	e, _ := scoring.NewEngine()

	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{"hand-flapping band", 2.5, 1.0},
		{"flapping lower bound", 1.5, 1.0},
		{"flapping upper bound", 3.5, 1.0},
		{"general band below flapping", 1.0, 0.7},
		{"general band above flapping", 4.5, 0.7},
		{"baseline below", 0.2, 0.3},
		{"baseline above", 8.0, 0.3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Score([]types.Peak{{Freq: tc.freq, Magnitude: 3.0}})
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("freq %v: expected %v, got %v", tc.freq, tc.want, got)
			}
		})
	}
}

func TestScore_MeanOverPeaks(t *testing.T) {
	e, _ := scoring.NewEngine()
	// Peak A: 2 Hz mag 10 -> 1.0 * 1.0. Peak B: 8 Hz mag 5 -> 0.3 * 0.5.
	got := e.Score([]types.Peak{
		{Freq: 2.0, Magnitude: 10},
		{Freq: 8.0, Magnitude: 5},
	})
	want := (1.0 + 0.15) / 2
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScore_AlwaysFiniteUnitInterval(t *testing.T) {
	e, _ := scoring.NewEngine()
	peaks := []types.Peak{
		{Freq: 2.0, Magnitude: 1e300},
		{Freq: 2.2, Magnitude: 1e-300},
		{Freq: 9.9, Magnitude: 42},
	}
	got := e.Score(peaks)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 || got > 1 {
		t.Fatalf("expected finite score in [0,1], got %v", got)
	}
}

func TestCombineAxisScores(t *testing.T) {
	e, _ := scoring.NewEngine()
	if got := e.CombineAxisScores(0.6, 0.8); math.Abs(got-0.7) > 1e-12 {
		t.Fatalf("expected 0.7, got %v", got)
	}
	if got := e.CombineAxisScores(); got != 0.0 {
		t.Fatalf("expected 0.0 for no scores, got %v", got)
	}
}

func TestNewEngine_RejectsInvertedBands(t *testing.T) {
	if _, err := scoring.NewEngine(scoring.WithHandFlappingBand(types.Band{Min: 3.5, Max: 1.5})); err == nil {
		t.Fatalf("expected error for inverted hand-flapping band")
	}
	if _, err := scoring.NewEngine(scoring.WithGeneralBand(types.Band{Min: 5.0, Max: 0.5})); err == nil {
		t.Fatalf("expected error for inverted general band")
	}
}
