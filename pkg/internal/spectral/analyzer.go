package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/joeydtaylor/metronome/pkg/internal/scoring"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Defaults match the validated detection pipeline.
const (
	DefaultSampleRate    = 25.1
	DefaultPeakThreshold = 0.05
	DefaultMaxPeaks      = 10
	DefaultMinSamples    = 10
)

// flatTolerance bounds the detrend residue, relative to the input magnitude,
// below which a window counts as zero-variance. Subtracting the mean from a
// constant sequence leaves rounding residue around 1e-16; a relative peak
// threshold would rank that noise floor as peaks.
const flatTolerance = 1e-12

// DefaultPlausibleBand bounds peaks to physiologically plausible motion.
var DefaultPlausibleBand = types.Band{Min: 0.1, Max: 10.0}

// Analyzer computes the frequency spectrum of one axis of one wrist and
// reduces it to an AxisAnalysis. It is stateless apart from configuration
// and safe for concurrent use once constructed.
type Analyzer struct {
	sampleRate    float64
	peakThreshold float64
	plausibleBand types.Band
	maxPeaks      int
	minSamples    int
	fullSpectrum  bool
	scorer        *scoring.Engine
}

// NewAnalyzer constructs an Analyzer, validating configuration once so the
// analysis path itself never fails.
func NewAnalyzer(options ...AnalyzerOption) (*Analyzer, error) {
	a := &Analyzer{
		sampleRate:    DefaultSampleRate,
		peakThreshold: DefaultPeakThreshold,
		plausibleBand: DefaultPlausibleBand,
		maxPeaks:      DefaultMaxPeaks,
		minSamples:    DefaultMinSamples,
	}
	for _, opt := range options {
		opt(a)
	}

	if a.sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", a.sampleRate)
	}
	if a.peakThreshold <= 0 || a.peakThreshold >= 1 {
		return nil, fmt.Errorf("peak threshold must be in (0, 1), got %v", a.peakThreshold)
	}
	if a.plausibleBand.Min > a.plausibleBand.Max {
		return nil, fmt.Errorf("plausible band min %v exceeds max %v", a.plausibleBand.Min, a.plausibleBand.Max)
	}
	if a.maxPeaks <= 0 {
		return nil, fmt.Errorf("max peaks must be positive, got %d", a.maxPeaks)
	}
	if a.minSamples < 2 {
		return nil, fmt.Errorf("min samples must be at least 2, got %d", a.minSamples)
	}

	if a.scorer == nil {
		scorer, err := scoring.NewEngine()
		if err != nil {
			return nil, err
		}
		a.scorer = scorer
	}
	return a, nil
}

// Scorer exposes the analyzer's scoring engine so wrist-level aggregation
// uses the same band configuration.
func (a *Analyzer) Scorer() *scoring.Engine {
	return a.scorer
}

// SampleRate returns the configured frame rate used for the frequency axis.
func (a *Analyzer) SampleRate() float64 {
	return a.sampleRate
}

// AnalyzeAxis transforms one axis sequence into ranked peaks and a score.
// Sequences shorter than the configured minimum yield an empty analysis
// with score zero; "no signal yet" is an expected steady state, not an
// error.
func (a *Analyzer) AnalyzeAxis(values []float64) types.AxisAnalysis {
	if len(values) < a.minSamples {
		return types.AxisAnalysis{}
	}

	// Remove the window mean before padding. Zero-padding an offset signal
	// would smear rectangular-window leakage across the low bins and make a
	// zero-variance sequence score above zero.
	detrended := detrend(values)
	if floats.Norm(detrended, math.Inf(1)) <= flatTolerance*floats.Norm(values, math.Inf(1)) {
		return types.AxisAnalysis{}
	}

	mags := a.spectrum(zeroPad(detrended))
	peaks := extractPeaks(mags, a.sampleRate, a.peakThreshold)

	if len(peaks) > a.maxPeaks {
		peaks = peaks[:a.maxPeaks]
	}
	peaks = filterBand(peaks, a.plausibleBand)

	return types.AxisAnalysis{
		Peaks:     peaks,
		Score:     a.scorer.Score(peaks),
		PeakCount: len(peaks),
	}
}

// spectrum computes magnitudes with the simplified real-input transform, or
// with the exact complex FFT when full-fidelity mode is enabled.
func (a *Analyzer) spectrum(padded []float64) []float64 {
	if a.fullSpectrum {
		coeffs := fft.FFTReal(padded)
		out := make([]float64, len(coeffs))
		for i, c := range coeffs {
			out[i] = cmplx.Abs(c)
		}
		return out
	}
	re, im := transform(padded)
	return magnitudes(re, im)
}

func filterBand(peaks []types.Peak, band types.Band) []types.Peak {
	out := peaks[:0:0]
	for _, p := range peaks {
		if band.Contains(p.Freq) {
			out = append(out, p)
		}
	}
	return out
}
