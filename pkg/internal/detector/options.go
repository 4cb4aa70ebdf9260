package detector

import (
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// WithComponentMetadata sets the component metadata for the Detector.
func WithComponentMetadata(name string, id string) types.Option[types.Detector] {
	return func(d types.Detector) {
		d.SetComponentMetadata(name, id)
	}
}

// WithLogger adds loggers to the Detector for outputting logs.
func WithLogger(loggers ...types.Logger) types.Option[types.Detector] {
	return func(d types.Detector) {
		d.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors whose callbacks fire on detector events.
func WithSensor(sensors ...types.Sensor) types.Option[types.Detector] {
	return func(d types.Detector) {
		d.ConnectSensor(sensors...)
	}
}

// WithMeter attaches meters that count detector activity.
func WithMeter(meters ...types.Meter) types.Option[types.Detector] {
	return func(d types.Detector) {
		d.ConnectMeter(meters...)
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok && id != "" {
			concrete.sessionID = id
		}
	}
}

// WithWindowSize bounds each wrist's sliding window.
func WithWindowSize(size int) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.windowSize = size
		}
	}
}

// WithAnalysisInterval sets the period of the re-analysis tick.
func WithAnalysisInterval(interval time.Duration) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.analysisInterval = interval
		}
	}
}

// WithFrameRate sets the assumed capture frame rate in hertz. It only derives
// the frequency axis; the analysis tick controls timing.
func WithFrameRate(rate float64) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.frameRate = rate
		}
	}
}

// WithPeakThreshold sets the fraction of the spectrum maximum a local maximum
// must exceed to count as a peak.
func WithPeakThreshold(fraction float64) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.peakThreshold = fraction
		}
	}
}

// WithMaxPeaks caps the ranked peaks retained per axis.
func WithMaxPeaks(n int) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.maxPeaks = n
		}
	}
}

// WithMinAxisSamples sets the per-axis sample count below which an axis
// yields an empty analysis and a wrist contributes nothing.
func WithMinAxisSamples(n int) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.minAxisSamples = n
		}
	}
}

// WithMinCombinedSamples sets the combined sample count below which an
// analysis pass is skipped outright.
func WithMinCombinedSamples(n int) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.minCombinedSamples = n
		}
	}
}

// WithHandFlappingBand overrides the full-weight scoring band.
func WithHandFlappingBand(band types.Band) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.handFlappingBand = band
		}
	}
}

// WithGeneralBand overrides the reduced-weight scoring band.
func WithGeneralBand(band types.Band) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.generalBand = band
		}
	}
}

// WithPlausibleBand bounds extracted peaks to a frequency interval.
func WithPlausibleBand(band types.Band) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.plausibleBand = band
		}
	}
}

// WithFullSpectrum switches analysis to the exact complex FFT. Scores in this
// mode were not part of the original threshold validation.
func WithFullSpectrum(enabled bool) types.Option[types.Detector] {
	return func(d types.Detector) {
		if concrete, ok := d.(*RealTimeDetector); ok {
			concrete.config.fullSpectrum = enabled
		}
	}
}
