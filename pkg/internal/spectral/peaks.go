package spectral

import (
	"sort"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"gonum.org/v1/gonum/floats"
)

// sidelobeRatio is the fraction of the dominant peak's magnitude a ranked
// peak must reach to count as a distinct motion component. Rectangular-window
// leakage puts sidelobes at up to roughly a fifth of the main lobe once the
// window is zero-padded; ranked as peaks they swamp the mean-based score.
const sidelobeRatio = 0.6

// extractPeaks finds local maxima in the half-spectrum above a relative
// threshold. A bin i (1 <= i < N/2) is a peak iff its magnitude exceeds both
// neighbors and thresholdFraction of the spectrum maximum. DC is never a
// peak, any frequency beyond Nyquist is discarded, and ranked peaks below
// sidelobeRatio of the dominant are dropped as leakage.
func extractPeaks(mags []float64, sampleRate, thresholdFraction float64) []types.Peak {
	n := len(mags)
	half := n / 2
	if half < 2 {
		return nil
	}

	maxMagnitude := floats.Max(mags[:half])
	if maxMagnitude <= 0 {
		return nil
	}
	threshold := thresholdFraction * maxMagnitude
	nyquist := sampleRate / 2

	var peaks []types.Peak
	for i := 1; i < half; i++ {
		if mags[i] <= mags[i-1] || mags[i] <= mags[i+1] || mags[i] <= threshold {
			continue
		}
		freq := float64(i) * sampleRate / float64(n)
		if freq <= 0 || freq > nyquist {
			continue
		}
		peaks = append(peaks, types.Peak{Freq: freq, Magnitude: mags[i]})
	}

	sort.Slice(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})

	for i := 1; i < len(peaks); i++ {
		if peaks[i].Magnitude < sidelobeRatio*peaks[0].Magnitude {
			peaks = peaks[:i]
			break
		}
	}
	return peaks
}
