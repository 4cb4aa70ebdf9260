package meter_test

import (
	"testing"

	"github.com/joeydtaylor/metronome/pkg/internal/meter"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

func TestMeter_Counts(t *testing.T) {
	m := meter.NewMeter()

	if got := m.GetMetricCount(types.MetricAnalysisPassCount); got != 0 {
		t.Fatalf("expected zero initial count, got %d", got)
	}

	m.IncrementCount(types.MetricAnalysisPassCount)
	m.IncrementCount(types.MetricAnalysisPassCount)
	m.AddToCount(types.MetricSampleIngestCount, 10)

	if got := m.GetMetricCount(types.MetricAnalysisPassCount); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := m.GetMetricCount(types.MetricSampleIngestCount); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}

	m.SetMetricCount(types.MetricSampleIngestCount, 3)
	if got := m.GetMetricCount(types.MetricSampleIngestCount); got != 3 {
		t.Fatalf("expected 3 after set, got %d", got)
	}
}

func TestMeter_Percentages(t *testing.T) {
	m := meter.NewMeter()
	m.SetMetricPercentage(types.MetricCurrentCpuPercentage, 42.5)
	if got := m.GetMetricPercentage(types.MetricCurrentCpuPercentage); got != 42.5 {
		t.Fatalf("expected 42.5, got %v", got)
	}
}

func TestMeter_Options(t *testing.T) {
	m := meter.NewMeter(
		meter.WithComponentMetadata("session-meter", "meter-1"),
		meter.WithInitialMetricCount(types.MetricAnalysisPassCount, 7),
	)
	if got := m.GetComponentMetadata(); got.Name != "session-meter" || got.ID != "meter-1" {
		t.Fatalf("unexpected metadata: %+v", got)
	}
	if got := m.GetMetricCount(types.MetricAnalysisPassCount); got != 7 {
		t.Fatalf("expected initial count 7, got %d", got)
	}
}

func TestMeter_ReportDataDoesNotBlock(t *testing.T) {
	m := meter.NewMeter()
	for i := 0; i < 100; i++ {
		m.ReportData()
	}
}
