package window

import (
	"fmt"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
)

// Series is a bounded, insertion-ordered sliding window over one wrist's
// sample stream. Appending beyond capacity evicts the oldest samples first;
// elements are never mutated in place.
//
// Series is not safe for concurrent use. The owning detector guards each
// series with its own lock and snapshots the contents before analysis.
type Series struct {
	capacity int
	samples  []types.Sample
}

// NewSeries constructs a Series bounded at capacity.
func NewSeries(capacity int) (*Series, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("window capacity must be positive, got %d", capacity)
	}
	return &Series{
		capacity: capacity,
		samples:  make([]types.Sample, 0, capacity),
	}, nil
}

// Append adds one sample and returns the number of samples evicted to stay
// within capacity.
func (s *Series) Append(sample types.Sample) int {
	s.samples = append(s.samples, sample)
	evicted := len(s.samples) - s.capacity
	if evicted <= 0 {
		return 0
	}
	copy(s.samples, s.samples[evicted:])
	s.samples = s.samples[:s.capacity]
	return evicted
}

// Len returns the current number of buffered samples.
func (s *Series) Len() int {
	return len(s.samples)
}

// Capacity returns the configured window bound.
func (s *Series) Capacity() int {
	return s.capacity
}

// Snapshot returns a copy of the buffered samples in insertion order. The
// copy is safe to read while the series continues to mutate.
func (s *Series) Snapshot() []types.Sample {
	out := make([]types.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Values extracts one coordinate of every buffered sample, in order.
func (s *Series) Values(axis types.Axis) []float64 {
	out := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		out[i] = sample.Coordinate(axis)
	}
	return out
}

// Clear drops all buffered samples, retaining capacity.
func (s *Series) Clear() {
	s.samples = s.samples[:0]
}
