package detector

import (
	"fmt"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/scoring"
	"github.com/joeydtaylor/metronome/pkg/internal/spectral"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// Defaults match the validated screening pipeline: a 100-sample window is
// roughly four seconds of footage at ~25 fps, re-analyzed once per second.
const (
	DefaultWindowSize         = 100
	DefaultAnalysisInterval   = 1000 * time.Millisecond
	DefaultFrameRate          = 25.1
	DefaultMinAxisSamples     = 10
	DefaultMinCombinedSamples = 20
)

type detectorConfig struct {
	windowSize         int
	analysisInterval   time.Duration
	frameRate          float64
	peakThreshold      float64
	maxPeaks           int
	minAxisSamples     int
	minCombinedSamples int
	fullSpectrum       bool
	handFlappingBand   types.Band
	generalBand        types.Band
	plausibleBand      types.Band
}

func defaultConfig() *detectorConfig {
	return &detectorConfig{
		windowSize:         DefaultWindowSize,
		analysisInterval:   DefaultAnalysisInterval,
		frameRate:          DefaultFrameRate,
		peakThreshold:      spectral.DefaultPeakThreshold,
		maxPeaks:           spectral.DefaultMaxPeaks,
		minAxisSamples:     DefaultMinAxisSamples,
		minCombinedSamples: DefaultMinCombinedSamples,
		handFlappingBand:   scoring.DefaultHandFlappingBand,
		generalBand:        scoring.DefaultGeneralBand,
		plausibleBand:      spectral.DefaultPlausibleBand,
	}
}

// validate fails fast on malformed configuration so the per-tick analysis
// path never has to.
func (c *detectorConfig) validate() error {
	if c.windowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.windowSize)
	}
	if c.analysisInterval <= 0 {
		return fmt.Errorf("analysis interval must be positive, got %v", c.analysisInterval)
	}
	if c.minCombinedSamples < 0 {
		return fmt.Errorf("min combined samples must not be negative, got %d", c.minCombinedSamples)
	}
	if c.handFlappingBand.Min > c.handFlappingBand.Max {
		return fmt.Errorf("hand-flapping band min %v exceeds max %v", c.handFlappingBand.Min, c.handFlappingBand.Max)
	}
	if c.generalBand.Min > c.generalBand.Max {
		return fmt.Errorf("general repetitive band min %v exceeds max %v", c.generalBand.Min, c.generalBand.Max)
	}
	// Frame rate, threshold, peak cap, and the plausible band are validated by
	// the analyzer constructor.
	return nil
}

func (c *detectorConfig) analyzerOptions() ([]spectral.AnalyzerOption, error) {
	scorer, err := scoring.NewEngine(
		scoring.WithHandFlappingBand(c.handFlappingBand),
		scoring.WithGeneralBand(c.generalBand),
	)
	if err != nil {
		return nil, err
	}
	return []spectral.AnalyzerOption{
		spectral.WithSampleRate(c.frameRate),
		spectral.WithPeakThreshold(c.peakThreshold),
		spectral.WithMaxPeaks(c.maxPeaks),
		spectral.WithMinSamples(c.minAxisSamples),
		spectral.WithPlausibleBand(c.plausibleBand),
		spectral.WithFullSpectrum(c.fullSpectrum),
		spectral.WithScoringEngine(scorer),
	}, nil
}
