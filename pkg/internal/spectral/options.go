package spectral

import (
	"github.com/joeydtaylor/metronome/pkg/internal/scoring"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// AnalyzerOption configures an Analyzer prior to validation.
type AnalyzerOption func(*Analyzer)

// WithSampleRate sets the assumed frame rate in hertz. Only the frequency
// axis depends on it; timing is driven by the controller's tick.
func WithSampleRate(rate float64) AnalyzerOption {
	return func(a *Analyzer) {
		a.sampleRate = rate
	}
}

// WithPeakThreshold sets the fraction of the spectrum maximum a local maximum
// must exceed to count as a peak.
func WithPeakThreshold(fraction float64) AnalyzerOption {
	return func(a *Analyzer) {
		a.peakThreshold = fraction
	}
}

// WithPlausibleBand bounds extracted peaks to a frequency interval.
func WithPlausibleBand(band types.Band) AnalyzerOption {
	return func(a *Analyzer) {
		a.plausibleBand = band
	}
}

// WithMaxPeaks caps the number of ranked peaks retained per axis.
func WithMaxPeaks(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.maxPeaks = n
	}
}

// WithMinSamples sets the per-axis sample count below which analysis yields
// an empty result.
func WithMinSamples(n int) AnalyzerOption {
	return func(a *Analyzer) {
		a.minSamples = n
	}
}

// WithFullSpectrum switches the analyzer to the exact complex FFT instead of
// the simplified real-input transform. Scores produced in this mode were not
// part of the original threshold validation.
func WithFullSpectrum(enabled bool) AnalyzerOption {
	return func(a *Analyzer) {
		a.fullSpectrum = enabled
	}
}

// WithScoringEngine injects a configured scoring engine.
func WithScoringEngine(engine *scoring.Engine) AnalyzerOption {
	return func(a *Analyzer) {
		a.scorer = engine
	}
}
