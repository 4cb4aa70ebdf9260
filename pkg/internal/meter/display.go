package meter

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Monitor renders periodic snapshots until cancellation or idle timeout.
// Every ReportData call from the pipeline resets the idle timer.
func (m *Meter) Monitor(ctx context.Context) {
	m.startTime = time.Now()
	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()
	idle := time.NewTimer(m.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			m.printFinalProgress()
			return
		case <-m.dataCh:
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(m.idleTimeout)
		case <-idle.C:
			fmt.Printf("Idled for %ds, monitor shutting down...\n", int(m.idleTimeout.Seconds()))
			m.printFinalProgress()
			return
		case <-ticker.C:
			m.updateDisplay()
		}
	}
}

func (m *Meter) updateDisplay() {
	elapsed := time.Since(m.startTime).Seconds()
	if elapsed <= 0 {
		return
	}

	passes := m.GetMetricCount(types.MetricAnalysisPassCount)
	skips := m.GetMetricCount(types.MetricAnalysisSkipCount)
	ingested := m.GetMetricCount(types.MetricSampleIngestCount)

	cpuPercentages, _ := cpu.Percent(time.Millisecond*500, false)
	memStats, _ := mem.VirtualMemory()
	if len(cpuPercentages) > 0 {
		m.SetMetricPercentage(types.MetricCurrentCpuPercentage, cpuPercentages[0])
	}
	if memStats != nil {
		m.SetMetricPercentage(types.MetricCurrentRamPercentage, memStats.UsedPercent)
	}

	fmt.Printf("\r\033[2Ksamples=%d (%.1f/s) passes=%d skips=%d cpu=%.1f%% ram=%.1f%%",
		ingested,
		float64(ingested)/elapsed,
		passes,
		skips,
		m.GetMetricPercentage(types.MetricCurrentCpuPercentage),
		m.GetMetricPercentage(types.MetricCurrentRamPercentage),
	)
}

func (m *Meter) printFinalProgress() {
	fmt.Println()
	fmt.Printf("samples ingested: %d\n", m.GetMetricCount(types.MetricSampleIngestCount))
	fmt.Printf("samples evicted: %d\n", m.GetMetricCount(types.MetricSampleEvictionCount))
	fmt.Printf("analysis passes: %d\n", m.GetMetricCount(types.MetricAnalysisPassCount))
	fmt.Printf("analysis skips: %d\n", m.GetMetricCount(types.MetricAnalysisSkipCount))
	fmt.Printf("peaks extracted: %d\n", m.GetMetricCount(types.MetricPeakExtractionCount))
	fmt.Printf("elapsed: %.1fs\n", time.Since(m.startTime).Seconds())
}
