package builder

import (
	"github.com/joeydtaylor/metronome/pkg/internal/utils"
)

// Map applies f to every element of elems.
func Map[T any](elems []T, f func(T) T) []T {
	return utils.Map(elems, f)
}

// Filter keeps the elements of elems for which f returns true.
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter(elems, f)
}

// Contains reports whether slice contains element.
func Contains[T comparable](slice []T, element T) bool {
	return utils.Contains(slice, element)
}

// GenerateUniqueHash returns a random hex identifier for component metadata.
func GenerateUniqueHash() string {
	return utils.GenerateUniqueHash()
}
