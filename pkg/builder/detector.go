package builder

import (
	"context"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/detector"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// NewDetector creates a real-time detector for one screening session.
func NewDetector(ctx context.Context, options ...types.Option[types.Detector]) (types.Detector, error) {
	return detector.NewDetector(ctx, options...)
}

// DetectorWithComponentMetadata adds component metadata overrides.
func DetectorWithComponentMetadata(name string, id string) types.Option[types.Detector] {
	return detector.WithComponentMetadata(name, id)
}

// DetectorWithLogger adds a logger to the Detector.
func DetectorWithLogger(logger ...types.Logger) types.Option[types.Detector] {
	return detector.WithLogger(logger...)
}

// DetectorWithSensor attaches sensors whose callbacks fire on detector events.
func DetectorWithSensor(sensor ...types.Sensor) types.Option[types.Detector] {
	return detector.WithSensor(sensor...)
}

// DetectorWithMeter attaches meters that count detector activity.
func DetectorWithMeter(meter ...types.Meter) types.Option[types.Detector] {
	return detector.WithMeter(meter...)
}

// DetectorWithSessionID overrides the generated session identifier.
func DetectorWithSessionID(id string) types.Option[types.Detector] {
	return detector.WithSessionID(id)
}

// DetectorWithWindowSize bounds each wrist's sliding window.
func DetectorWithWindowSize(size int) types.Option[types.Detector] {
	return detector.WithWindowSize(size)
}

// DetectorWithAnalysisInterval sets the period of the re-analysis tick.
func DetectorWithAnalysisInterval(interval time.Duration) types.Option[types.Detector] {
	return detector.WithAnalysisInterval(interval)
}

// DetectorWithFrameRate sets the assumed capture frame rate in hertz.
func DetectorWithFrameRate(rate float64) types.Option[types.Detector] {
	return detector.WithFrameRate(rate)
}

// DetectorWithPeakThreshold sets the peak detection threshold fraction.
func DetectorWithPeakThreshold(fraction float64) types.Option[types.Detector] {
	return detector.WithPeakThreshold(fraction)
}

// DetectorWithMaxPeaks caps the ranked peaks retained per axis.
func DetectorWithMaxPeaks(n int) types.Option[types.Detector] {
	return detector.WithMaxPeaks(n)
}

// DetectorWithMinAxisSamples sets the per-axis minimum sample count.
func DetectorWithMinAxisSamples(n int) types.Option[types.Detector] {
	return detector.WithMinAxisSamples(n)
}

// DetectorWithMinCombinedSamples sets the combined sample count below which
// an analysis pass is skipped.
func DetectorWithMinCombinedSamples(n int) types.Option[types.Detector] {
	return detector.WithMinCombinedSamples(n)
}

// DetectorWithHandFlappingBand overrides the full-weight scoring band.
func DetectorWithHandFlappingBand(band types.Band) types.Option[types.Detector] {
	return detector.WithHandFlappingBand(band)
}

// DetectorWithGeneralBand overrides the reduced-weight scoring band.
func DetectorWithGeneralBand(band types.Band) types.Option[types.Detector] {
	return detector.WithGeneralBand(band)
}

// DetectorWithPlausibleBand bounds extracted peaks to a frequency interval.
func DetectorWithPlausibleBand(band types.Band) types.Option[types.Detector] {
	return detector.WithPlausibleBand(band)
}

// DetectorWithFullSpectrum switches analysis to the exact complex FFT.
func DetectorWithFullSpectrum(enabled bool) types.Option[types.Detector] {
	return detector.WithFullSpectrum(enabled)
}
