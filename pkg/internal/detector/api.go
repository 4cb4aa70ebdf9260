package detector

import (
	"github.com/joeydtaylor/metronome/pkg/internal/classifier"
	"github.com/joeydtaylor/metronome/pkg/internal/session"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/internal/window"
	"github.com/joeydtaylor/metronome/pkg/logschema"
)

// AddSample ingests one wrist position into that wrist's sliding window.
// Samples beyond the configured window size evict the oldest entries first.
// Samples arriving between ticks accumulate and are only reflected in the
// next published snapshot.
func (d *RealTimeDetector) AddSample(wrist types.Wrist, sample types.Sample) {
	series, ok := d.series(wrist)
	if !ok {
		d.NotifyLoggers(types.WarnLevel,
			"Sample dropped: unknown wrist",
			logschema.FieldComponent, d.GetComponentMetadata(),
			logschema.FieldEvent, "AddSample",
			"wrist", wrist,
		)
		return
	}

	d.windowLock.Lock()
	evicted := series.Append(sample)
	d.windowLock.Unlock()

	cm := d.GetComponentMetadata()
	for _, s := range d.snapshotSensors() {
		s.InvokeOnSampleIngested(cm, wrist, sample)
		if evicted > 0 {
			s.InvokeOnSampleEvicted(cm, wrist, evicted)
		}
	}
	for _, m := range d.snapshotMeters() {
		m.IncrementCount(types.MetricSampleIngestCount)
		if evicted > 0 {
			m.AddToCount(types.MetricSampleEvictionCount, uint64(evicted))
		}
		m.ReportData()
	}
}

// WindowLen reports the current number of buffered samples for a wrist.
func (d *RealTimeDetector) WindowLen(wrist types.Wrist) int {
	series, ok := d.series(wrist)
	if !ok {
		return 0
	}
	d.windowLock.Lock()
	defer d.windowLock.Unlock()
	return series.Len()
}

// Analyze runs one full pass over the current window contents and publishes
// the resulting snapshot. The periodic tick calls it; tests call it directly
// for deterministic advancement. A pass over an unchanged window yields an
// identical result.
func (d *RealTimeDetector) Analyze() types.SessionAnalysis {
	d.windowLock.Lock()
	leftSamples := d.windows[types.WristLeft].Snapshot()
	rightSamples := d.windows[types.WristRight].Snapshot()
	d.windowLock.Unlock()

	cm := d.GetComponentMetadata()
	combined := len(leftSamples) + len(rightSamples)
	if combined < d.config.minCombinedSamples {
		d.NotifyLoggers(types.DebugLevel,
			"Analysis skipped: insufficient samples",
			logschema.FieldComponent, cm,
			logschema.FieldEvent, "Analyze",
			logschema.FieldSession, d.sessionID,
			"combined_samples", combined,
			"min_combined_samples", d.config.minCombinedSamples,
		)
		for _, s := range d.snapshotSensors() {
			s.InvokeOnAnalysisSkipped(cm, combined)
		}
		for _, m := range d.snapshotMeters() {
			m.IncrementCount(types.MetricAnalysisSkipCount)
		}
		if latest, ok := d.Latest(); ok {
			return latest
		}
		return types.SessionAnalysis{SessionID: d.sessionID}
	}

	left := d.analyzeWrist(types.WristLeft, leftSamples)
	right := d.analyzeWrist(types.WristRight, rightSamples)
	analysis := session.Aggregate(d.sessionID, left, right)

	d.latestLock.Lock()
	d.latest = &analysis
	d.latestLock.Unlock()

	if analysis.Summary != nil {
		d.NotifyLoggers(types.DebugLevel,
			"Analysis pass complete",
			logschema.FieldComponent, cm,
			logschema.FieldEvent, "Analyze",
			logschema.FieldSession, d.sessionID,
			"overall_score", analysis.Summary.OverallScore,
			logschema.FieldResult, analysis.Summary.Classification.String(),
			"wrist_count", analysis.Summary.WristCount,
		)
	}
	for _, s := range d.snapshotSensors() {
		s.InvokeOnAnalysisComplete(cm, analysis)
	}
	for _, m := range d.snapshotMeters() {
		m.IncrementCount(types.MetricAnalysisPassCount)
		m.AddToCount(types.MetricPeakExtractionCount, uint64(peakTotal(left)+peakTotal(right)))
		m.ReportData()
	}
	return analysis
}

// Latest returns the most recently published snapshot. The boolean is false
// until the first completed pass.
func (d *RealTimeDetector) Latest() (types.SessionAnalysis, bool) {
	d.latestLock.RLock()
	defer d.latestLock.RUnlock()
	if d.latest == nil {
		return types.SessionAnalysis{}, false
	}
	return *d.latest, true
}

// Summary derives the condensed downstream view from the latest snapshot.
func (d *RealTimeDetector) Summary() (types.MotionSummary, bool) {
	latest, ok := d.Latest()
	if !ok {
		return types.MotionSummary{}, false
	}
	return session.MotionSummary(latest)
}

// analyzeWrist runs the vertical and depth axes through the spectral pipeline
// and combines them. A wrist with fewer samples than the per-axis minimum
// contributes nothing; the lateral axis is not part of the flapping signature
// and is excluded from the overall score.
func (d *RealTimeDetector) analyzeWrist(wrist types.Wrist, samples []types.Sample) *types.WristAnalysis {
	if len(samples) < d.config.minAxisSamples {
		return nil
	}

	yValues := make([]float64, len(samples))
	zValues := make([]float64, len(samples))
	for i, s := range samples {
		yValues[i] = s.Y
		zValues[i] = s.Z
	}

	yAxis := d.analyzer.AnalyzeAxis(yValues)
	zAxis := d.analyzer.AnalyzeAxis(zValues)
	overall := d.analyzer.Scorer().CombineAxisScores(yAxis.Score, zAxis.Score)
	severity := classifier.Classify(overall)

	return &types.WristAnalysis{
		Wrist:          wrist,
		YAxis:          yAxis,
		ZAxis:          zAxis,
		OverallScore:   overall,
		Classification: severity,
		Description:    classifier.Describe(severity),
		SampleCount:    len(samples),
	}
}

func (d *RealTimeDetector) series(wrist types.Wrist) (*window.Series, bool) {
	s, ok := d.windows[wrist]
	return s, ok
}

func peakTotal(w *types.WristAnalysis) int {
	if w == nil {
		return 0
	}
	return w.YAxis.PeakCount + w.ZAxis.PeakCount
}
