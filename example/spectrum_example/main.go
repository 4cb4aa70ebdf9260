package main

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/metronome/pkg/builder"
)

// Runs one axis sequence through the spectral analyzer directly, outside a
// detector, and prints the ranked peaks both in the default simplified mode
// and in full-fidelity FFT mode.
func main() {
	const sampleRate = 25.0

	values := make([]float64, 128)
	for i := range values {
		tSec := float64(i) / sampleRate
		values[i] = 6*math.Sin(2*math.Pi*2.0*tSec) + 2*math.Sin(2*math.Pi*4.5*tSec)
	}

	for _, mode := range []struct {
		name         string
		fullSpectrum bool
	}{
		{"simplified transform", false},
		{"full-fidelity FFT", true},
	} {
		analyzer, err := builder.NewAnalyzer(
			builder.AnalyzerWithSampleRate(sampleRate),
			builder.AnalyzerWithFullSpectrum(mode.fullSpectrum),
		)
		if err != nil {
			fmt.Printf("Error building analyzer: %v\n", err)
			return
		}

		analysis := analyzer.AnalyzeAxis(values)
		fmt.Printf("%s: score=%.3f peaks=%d\n", mode.name, analysis.Score, analysis.PeakCount)
		for _, p := range analysis.Peaks {
			fmt.Printf("  %.2f Hz (magnitude %.1f)\n", p.Freq, p.Magnitude)
		}
	}
}
