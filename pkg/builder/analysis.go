package builder

import (
	"github.com/joeydtaylor/metronome/pkg/internal/classifier"
	"github.com/joeydtaylor/metronome/pkg/internal/scoring"
	"github.com/joeydtaylor/metronome/pkg/internal/session"
	"github.com/joeydtaylor/metronome/pkg/internal/spectral"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

type Analyzer = spectral.Analyzer

type AnalyzerOption = spectral.AnalyzerOption

type ScoringEngine = scoring.Engine

type ScoringEngineOption = scoring.EngineOption

type ClassifierResult = classifier.Result

// NewAnalyzer creates a standalone spectral analyzer for one-off axis
// analysis outside a detector.
func NewAnalyzer(options ...spectral.AnalyzerOption) (*spectral.Analyzer, error) {
	return spectral.NewAnalyzer(options...)
}

// AnalyzerWithSampleRate sets the assumed frame rate in hertz.
func AnalyzerWithSampleRate(rate float64) AnalyzerOption {
	return spectral.WithSampleRate(rate)
}

// AnalyzerWithPeakThreshold sets the peak detection threshold fraction.
func AnalyzerWithPeakThreshold(fraction float64) AnalyzerOption {
	return spectral.WithPeakThreshold(fraction)
}

// AnalyzerWithPlausibleBand bounds extracted peaks to a frequency interval.
func AnalyzerWithPlausibleBand(band types.Band) AnalyzerOption {
	return spectral.WithPlausibleBand(band)
}

// AnalyzerWithMaxPeaks caps the ranked peaks retained per axis.
func AnalyzerWithMaxPeaks(n int) AnalyzerOption {
	return spectral.WithMaxPeaks(n)
}

// AnalyzerWithMinSamples sets the sample count below which analysis yields an
// empty result.
func AnalyzerWithMinSamples(n int) AnalyzerOption {
	return spectral.WithMinSamples(n)
}

// AnalyzerWithFullSpectrum switches to the exact complex FFT.
func AnalyzerWithFullSpectrum(enabled bool) AnalyzerOption {
	return spectral.WithFullSpectrum(enabled)
}

// AnalyzerWithScoringEngine injects a configured scoring engine.
func AnalyzerWithScoringEngine(engine *scoring.Engine) AnalyzerOption {
	return spectral.WithScoringEngine(engine)
}

// NewScoringEngine creates a peak scoring engine.
func NewScoringEngine(options ...scoring.EngineOption) (*scoring.Engine, error) {
	return scoring.NewEngine(options...)
}

// ScoringWithHandFlappingBand overrides the full-weight frequency band.
func ScoringWithHandFlappingBand(band types.Band) ScoringEngineOption {
	return scoring.WithHandFlappingBand(band)
}

// ScoringWithGeneralBand overrides the reduced-weight frequency band.
func ScoringWithGeneralBand(band types.Band) ScoringEngineOption {
	return scoring.WithGeneralBand(band)
}

// Classify maps a score in [0, 1] onto a severity label.
func Classify(score float64) types.Severity {
	return classifier.Classify(score)
}

// Describe returns the fixed description for a severity label.
func Describe(severity types.Severity) string {
	return classifier.Describe(severity)
}

// Recommendations returns the fixed recommendation list for a severity label.
func Recommendations(severity types.Severity) []string {
	return classifier.Recommendations(severity)
}

// Evaluate classifies a score and bundles the label with its description and
// recommendations.
func Evaluate(score float64) classifier.Result {
	return classifier.Evaluate(score)
}

// Aggregate combines per-wrist analyses into a session analysis.
func Aggregate(sessionID string, left, right *types.WristAnalysis) types.SessionAnalysis {
	return session.Aggregate(sessionID, left, right)
}

// DeriveMotionSummary derives the condensed downstream view from a session
// analysis.
func DeriveMotionSummary(analysis types.SessionAnalysis) (types.MotionSummary, bool) {
	return session.MotionSummary(analysis)
}
