package detector_test

import (
	"context"
	"math"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/detector"
	"github.com/joeydtaylor/metronome/pkg/internal/meter"
	"github.com/joeydtaylor/metronome/pkg/internal/sensor"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// feedFlapping pushes n frames of synthetic flapping motion for one wrist:
// the vertical axis oscillates at freqHz with amplitude 10, the depth axis
// follows at lower amplitude, plus uniform noise in [-0.5, 0.5].
func feedFlapping(d types.Detector, wrist types.Wrist, n int, freqHz, sampleRate float64) {
	rng := rand.New(rand.NewSource(42))
	noise := func() float64 { return rng.Float64() - 0.5 }
	for i := 0; i < n; i++ {
		tSec := float64(i) / sampleRate
		d.AddSample(wrist, types.Sample{
			X:          noise(),
			Y:          10*math.Sin(2*math.Pi*freqHz*tSec) + noise(),
			Z:          4*math.Sin(2*math.Pi*freqHz*tSec) + noise(),
			Confidence: 0.9,
			Timestamp:  tSec,
		})
	}
}

func TestNewDetector_ValidatesConfiguration(t *testing.T) {
	cases := []struct {
		name string
		opts []types.Option[types.Detector]
	}{
		{"zero window size", []types.Option[types.Detector]{detector.WithWindowSize(0)}},
		{"negative window size", []types.Option[types.Detector]{detector.WithWindowSize(-5)}},
		{"zero interval", []types.Option[types.Detector]{detector.WithAnalysisInterval(0)}},
		{"zero frame rate", []types.Option[types.Detector]{detector.WithFrameRate(0)}},
		{"inverted flapping band", []types.Option[types.Detector]{detector.WithHandFlappingBand(types.Band{Min: 3.5, Max: 1.5})}},
		{"inverted general band", []types.Option[types.Detector]{detector.WithGeneralBand(types.Band{Min: 5.0, Max: 0.5})}},
		{"peak threshold at one", []types.Option[types.Detector]{detector.WithPeakThreshold(1.0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := detector.NewDetector(context.Background(), tc.opts...); err == nil {
				t.Fatalf("expected configuration error")
			}
		})
	}
}

func TestDetector_WindowEviction(t *testing.T) {
	d, err := detector.NewDetector(context.Background())
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	for i := 0; i < 150; i++ {
		d.AddSample(types.WristLeft, types.Sample{Y: float64(i), Timestamp: float64(i)})
	}

	if got := d.WindowLen(types.WristLeft); got != 100 {
		t.Fatalf("expected window bounded at 100, got %d", got)
	}
	if got := d.WindowLen(types.WristRight); got != 0 {
		t.Fatalf("expected empty right window, got %d", got)
	}
}

func TestDetector_SkipsBelowCombinedMinimum(t *testing.T) {
	var skippedWith int
	s := sensor.NewSensor(
		sensor.WithOnAnalysisSkippedFunc(func(_ types.ComponentMetadata, sampleCount int) {
			skippedWith = sampleCount
		}),
	)

	d, err := detector.NewDetector(context.Background(), detector.WithSensor(s))
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	for i := 0; i < 15; i++ {
		d.AddSample(types.WristLeft, types.Sample{Y: float64(i)})
	}

	d.Analyze()

	if _, ok := d.Latest(); ok {
		t.Fatalf("expected no published snapshot after skipped pass")
	}
	if _, ok := d.Summary(); ok {
		t.Fatalf("expected no summary after skipped pass")
	}
	if skippedWith != 15 {
		t.Fatalf("expected skip callback with 15 samples, got %d", skippedWith)
	}
}

func TestDetector_EndToEndFlappingDetection(t *testing.T) {
	const sampleRate = 25.0

	d, err := detector.NewDetector(context.Background(),
		detector.WithSessionID("session-e2e"),
		detector.WithFrameRate(sampleRate),
	)
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	feedFlapping(d, types.WristLeft, 150, 2.2, sampleRate)
	analysis := d.Analyze()

	if analysis.SessionID != "session-e2e" {
		t.Fatalf("unexpected session id %q", analysis.SessionID)
	}
	if analysis.LeftWrist == nil {
		t.Fatalf("expected left wrist analysis")
	}
	if analysis.RightWrist != nil {
		t.Fatalf("expected no right wrist analysis, got %+v", analysis.RightWrist)
	}
	if analysis.Summary == nil {
		t.Fatalf("expected session summary")
	}
	if analysis.Summary.WristCount != 1 {
		t.Fatalf("expected wrist count 1, got %d", analysis.Summary.WristCount)
	}

	left := analysis.LeftWrist
	if left.SampleCount != 100 {
		t.Fatalf("expected analysis over the bounded window of 100, got %d", left.SampleCount)
	}
	if left.Classification != types.SeverityMedium && left.Classification != types.SeverityHigh {
		t.Fatalf("expected MEDIUM or HIGH for 2.2 Hz flapping, got %s (score %v)",
			left.Classification, left.OverallScore)
	}
	if len(left.YAxis.Peaks) == 0 {
		t.Fatalf("expected vertical-axis peaks")
	}
	dominant := left.YAxis.Peaks[0].Freq
	if dominant < 1.7 || dominant > 2.7 {
		t.Fatalf("dominant frequency %v Hz outside [1.7, 2.7]", dominant)
	}

	summary, ok := d.Summary()
	if !ok {
		t.Fatalf("expected motion summary after completed pass")
	}
	if !summary.HasRepetitiveMotion {
		t.Fatalf("expected repetitive motion flagged, got %+v", summary)
	}
	if len(summary.Recommendations) == 0 {
		t.Fatalf("expected recommendations for %s", summary.Severity)
	}
}

func TestDetector_StationaryHandScoresNone(t *testing.T) {
	d, err := detector.NewDetector(context.Background())
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	for i := 0; i < 60; i++ {
		d.AddSample(types.WristRight, types.Sample{X: 1.2, Y: 3.4, Z: 5.6, Timestamp: float64(i)})
	}

	analysis := d.Analyze()
	if analysis.RightWrist == nil {
		t.Fatalf("expected right wrist analysis")
	}
	if analysis.RightWrist.OverallScore != 0.0 {
		t.Fatalf("expected score 0.0 for stationary hand, got %v", analysis.RightWrist.OverallScore)
	}
	if analysis.RightWrist.Classification != types.SeverityNone {
		t.Fatalf("expected NONE for stationary hand, got %s", analysis.RightWrist.Classification)
	}

	summary, ok := d.Summary()
	if !ok {
		t.Fatalf("expected summary for completed pass")
	}
	if summary.HasRepetitiveMotion {
		t.Fatalf("stationary hand must not flag repetitive motion")
	}
}

func TestDetector_RepeatedAnalysisIsIdempotent(t *testing.T) {
	d, err := detector.NewDetector(context.Background(), detector.WithFrameRate(25.0))
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	feedFlapping(d, types.WristLeft, 80, 2.0, 25.0)

	first := d.Analyze()
	second := d.Analyze()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated analysis over an unchanged window diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDetector_Lifecycle(t *testing.T) {
	d, err := detector.NewDetector(context.Background(),
		detector.WithAnalysisInterval(10*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	if d.IsStarted() {
		t.Fatalf("detector must not start before Start")
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if !d.IsStarted() {
		t.Fatalf("expected started after Start")
	}
	if err := d.Start(context.Background()); err == nil {
		t.Fatalf("expected error on double start")
	}

	if err := d.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
	if d.IsStarted() {
		t.Fatalf("expected stopped after Stop")
	}
	if err := d.Stop(); err != nil {
		t.Fatalf("Stop must be idempotent: %v", err)
	}

	if err := d.Restart(context.Background()); err != nil {
		t.Fatalf("Restart error: %v", err)
	}
	if !d.IsStarted() {
		t.Fatalf("expected started after Restart")
	}
	if err := d.Stop(); err != nil {
		t.Fatalf("final Stop error: %v", err)
	}
}

func TestDetector_TickDrivesAnalysis(t *testing.T) {
	done := make(chan types.SessionAnalysis, 1)
	s := sensor.NewSensor(
		sensor.WithOnAnalysisCompleteFunc(func(_ types.ComponentMetadata, analysis types.SessionAnalysis) {
			select {
			case done <- analysis:
			default:
			}
		}),
	)

	d, err := detector.NewDetector(context.Background(),
		detector.WithAnalysisInterval(10*time.Millisecond),
		detector.WithFrameRate(25.0),
		detector.WithSensor(s),
	)
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	feedFlapping(d, types.WristLeft, 60, 2.2, 25.0)

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer d.Stop()

	select {
	case analysis := <-done:
		if analysis.Summary == nil {
			t.Fatalf("tick published snapshot without summary: %+v", analysis)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no analysis pass within 2s of starting the tick")
	}
}

func TestDetector_MetersCountActivity(t *testing.T) {
	m := meter.NewMeter()
	d, err := detector.NewDetector(context.Background(),
		detector.WithFrameRate(25.0),
		detector.WithMeter(m),
	)
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	feedFlapping(d, types.WristLeft, 120, 2.2, 25.0)
	d.Analyze()

	if got := m.GetMetricCount(types.MetricSampleIngestCount); got != 120 {
		t.Fatalf("expected 120 ingests counted, got %d", got)
	}
	if got := m.GetMetricCount(types.MetricSampleEvictionCount); got != 20 {
		t.Fatalf("expected 20 evictions counted, got %d", got)
	}
	if got := m.GetMetricCount(types.MetricAnalysisPassCount); got != 1 {
		t.Fatalf("expected 1 analysis pass counted, got %d", got)
	}
	if got := m.GetMetricCount(types.MetricPeakExtractionCount); got == 0 {
		t.Fatalf("expected extracted peaks counted")
	}
}
