package statistics

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Number is the element type accepted by the statistics helpers.
// The float64 results are rounded for integers beyond 2^53, use the Rat
// helpers when exact values are needed.
type Number interface {
	constraints.Integer | constraints.Float
}

type ascending[T Number] []T

func (s ascending[T]) Len() int           { return len(s) }
func (s ascending[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ascending[T]) Less(i, j int) bool { return s[i] < s[j] }

// SortedCopy returns an ascending copy of values, the input slice is left untouched.
func SortedCopy[T Number](values []T) []T {
	sorted := append([]T(nil), values...)
	sort.Stable(ascending[T](sorted))
	return sorted
}

// Median returns the median of an already sorted, non-empty slice.
// For an even length it is the mean of the two middle elements.
func Median[T Number](sorted []T) float64 {
	n := len(sorted)
	half := n / 2
	if n%2 == 1 {
		return float64(sorted[half])
	}

	return (float64(sorted[half-1]) + float64(sorted[half])) / 2
}

// Halves splits a sorted slice into its lower and upper halves.
// When the length is odd, the middle element belongs to neither half.
// An even length splits exactly in two, the Tukey hinge split.
func Halves[T Number](sorted []T) (lower, upper []T) {
	n := len(sorted)
	half := n / 2
	lower = sorted[:half]
	if n%2 == 1 {
		upper = sorted[half+1:]
	} else {
		upper = sorted[half:]
	}
	return lower, upper
}

// Quartiles computes Tukey's hinges of a sorted, non-empty slice:
// q1 is the median of the lower half, q2 the median and q3 the median of the upper half.
// A single element sequence has empty halves, its quartiles all collapse to the element.
func Quartiles[T Number](sorted []T) (q1, q2, q3 float64) {
	q2 = Median(sorted)

	lower, upper := Halves(sorted)
	if len(lower) == 0 || len(upper) == 0 {
		return q2, q2, q2
	}

	return Median(lower), q2, Median(upper)
}
