package scoring

import (
	"fmt"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Frequency-dependent weights. The hand-flapping band is a subset of the
// general repetitive band and takes precedence on overlap.
const (
	weightHandFlapping = 1.0
	weightGeneral      = 0.7
	weightBaseline     = 0.3
)

// Default bands in hertz.
var (
	DefaultHandFlappingBand = types.Band{Min: 1.5, Max: 3.5}
	DefaultGeneralBand      = types.Band{Min: 0.5, Max: 5.0}
)

// Engine reduces a ranked peak list to a repetitiveness score in [0, 1].
// Each peak's magnitude is normalized against the set's maximum and weighted
// by how close its frequency sits to the hand-flapping signature.
type Engine struct {
	handFlappingBand types.Band
	generalBand      types.Band
}

// EngineOption configures an Engine prior to validation.
type EngineOption func(*Engine)

// WithHandFlappingBand overrides the full-weight frequency band.
func WithHandFlappingBand(band types.Band) EngineOption {
	return func(e *Engine) {
		e.handFlappingBand = band
	}
}

// WithGeneralBand overrides the reduced-weight frequency band.
func WithGeneralBand(band types.Band) EngineOption {
	return func(e *Engine) {
		e.generalBand = band
	}
}

// NewEngine constructs a scoring engine, validating band configuration once
// up front so scoring itself never fails.
func NewEngine(options ...EngineOption) (*Engine, error) {
	e := &Engine{
		handFlappingBand: DefaultHandFlappingBand,
		generalBand:      DefaultGeneralBand,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.handFlappingBand.Min > e.handFlappingBand.Max {
		return nil, fmt.Errorf("hand-flapping band min %v exceeds max %v", e.handFlappingBand.Min, e.handFlappingBand.Max)
	}
	if e.generalBand.Min > e.generalBand.Max {
		return nil, fmt.Errorf("general repetitive band min %v exceeds max %v", e.generalBand.Min, e.generalBand.Max)
	}
	return e, nil
}

// Score reduces peaks to a scalar in [0, 1]. An empty peak list scores
// exactly 0.0, never NaN, as does a set whose maximum magnitude is zero.
func (e *Engine) Score(peaks []types.Peak) float64 {
	if len(peaks) == 0 {
		return 0.0
	}

	magnitudes := make([]float64, len(peaks))
	for i, p := range peaks {
		magnitudes[i] = p.Magnitude
	}
	maxMagnitude := floats.Max(magnitudes)
	if maxMagnitude <= 0 {
		return 0.0
	}

	total := 0.0
	for _, p := range peaks {
		total += e.weight(p.Freq) * (p.Magnitude / maxMagnitude)
	}
	return clampUnit(total / float64(len(peaks)))
}

// CombineAxisScores averages per-axis scores into a wrist-level score.
func (e *Engine) CombineAxisScores(scores ...float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	return clampUnit(stat.Mean(scores, nil))
}

// weight tests the hand-flapping band first; it is a subset of the general
// band and must win on overlap.
func (e *Engine) weight(freq float64) float64 {
	switch {
	case e.handFlappingBand.Contains(freq):
		return weightHandFlapping
	case e.generalBand.Contains(freq):
		return weightGeneral
	default:
		return weightBaseline
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v != v: // NaN guard
		return 0.0
	case v < 0:
		return 0.0
	case v > 1:
		return 1.0
	default:
		return v
	}
}
