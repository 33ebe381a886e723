// Package outlier detects outliers of a numeric sequence with Tukey's
// interquartile range method.
//
// A value is an outlier when its distance from the median exceeds the
// interquartile range scaled by the fence multiplier g. The package offers two
// calling conventions over the same computation: Detect returns the outliers
// themselves, while Filter is a lazily initialized predicate that keeps the
// inliers of whatever sequence it is first applied to.
package outlier

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/outliers/pkg/statistics"
)

const (
	// DefaultMultiplier is the classic Tukey fence for mild outliers.
	DefaultMultiplier = 1.5

	// ExtremeMultiplier is the conventional fence for extreme outliers.
	ExtremeMultiplier = 3.0
)

var log = logrus.WithField("component", "outlier")

// Number is the element type outliers can be computed on.
type Number = statistics.Number

// Fence is the result of one outlier computation over a whole sequence.
//
// For integer sequences the float64 fields are rounded beyond 2^53, the
// classification itself is computed with exact rationals.
type Fence[T Number] struct {
	Median float64 `json:"median" yaml:"median"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Q3     float64 `json:"q3" yaml:"q3"`

	// Multiplier is the g the range was scaled with
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`

	// Range is (Q3 - Q1) * Multiplier, the largest distance from the median an inlier may have.
	Range float64 `json:"range" yaml:"range"`

	// Size is the length of the sequence the fence was computed on.
	Size int `json:"size" yaml:"size"`

	// Outliers holds the excluded values in ascending order, duplicates included.
	Outliers []T `json:"outliers" yaml:"outliers"`

	set map[T]struct{}

	// exact median and range, only set for integer sequences
	exactMedian *big.Rat
	exactRange  *big.Rat
}

func (f *Fence[T]) IQR() float64 {
	return f.Q3 - f.Q1
}

// Lower is the smallest value that is still an inlier.
func (f *Fence[T]) Lower() float64 {
	return f.Median - f.Range
}

// Upper is the largest value that is still an inlier.
func (f *Fence[T]) Upper() float64 {
	return f.Median + f.Range
}

// IsOutlier tests v against the fence, v does not need to belong to the computed sequence.
func (f *Fence[T]) IsOutlier(v T) bool {
	if f.exactMedian != nil {
		dev := new(big.Rat).Sub(statistics.Rat(v), f.exactMedian)
		return dev.Abs(dev).Cmp(f.exactRange) > 0
	}

	return math.Abs(float64(v)-f.Median) > f.Range
}

// Contains reports whether v is a member of the computed outlier set.
func (f *Fence[T]) Contains(v T) bool {
	_, ok := f.set[v]
	return ok
}

// ValidateMultiplier checks that g is a usable fence multiplier.
func ValidateMultiplier(g float64) error {
	if math.IsNaN(g) || math.IsInf(g, 0) || g < 0 {
		return errors.Wrapf(ErrInvalidArgument, "multiplier must be a finite number >= 0, got %v", g)
	}
	return nil
}

// Compute runs the IQR computation on values with the fence multiplier g.
// values is copied before sorting, the caller's slice is never modified.
func Compute[T Number](values []T, g float64) (*Fence[T], error) {
	return compute(values, g, modeDirect)
}

func compute[T Number](values []T, g float64, mode string) (*Fence[T], error) {
	fence, err := doCompute(values, g)
	if err != nil {
		computationErrorsMetric.WithLabelValues(mode).Inc()
		return nil, err
	}

	computationsMetric.WithLabelValues(mode).Inc()
	sequenceSizeMetric.Observe(float64(fence.Size))
	outliersMetric.WithLabelValues(mode).Add(float64(len(fence.Outliers)))
	return fence, nil
}

func doCompute[T Number](values []T, g float64) (*Fence[T], error) {
	if err := ValidateMultiplier(g); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "cannot compute median/quartiles of empty sequence")
	}

	for i, v := range values {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.Wrapf(ErrTypeMismatch, "element %d is %v", i, f)
		}
	}

	sorted := statistics.SortedCopy(values)
	q1, median, q3 := statistics.Quartiles(sorted)

	fence := &Fence[T]{
		Median:     median,
		Q1:         q1,
		Q3:         q3,
		Multiplier: g,
		Range:      (q3 - q1) * g,
		Size:       len(sorted),
		Outliers:   []T{},
		set:        make(map[T]struct{}),
	}

	if statistics.IsInteger[T]() {
		exactQ1, exactMedian, exactQ3 := statistics.QuartilesRat(sorted)
		iqr := new(big.Rat).Sub(exactQ3, exactQ1)
		fence.exactMedian = exactMedian
		fence.exactRange = iqr.Mul(iqr, new(big.Rat).SetFloat64(g))
	}

	for _, v := range sorted {
		if fence.IsOutlier(v) {
			fence.Outliers = append(fence.Outliers, v)
			fence.set[v] = struct{}{}
		}
	}

	log.Debugf("computed fence over %d values: median=%v q1=%v q3=%v range=%v outliers=%d",
		fence.Size, median, q1, q3, fence.Range, len(fence.Outliers))
	return fence, nil
}

// Detect returns the outliers of values in ascending order.
// An input without outliers yields an empty, non-nil slice.
func Detect[T Number](values []T, g float64) ([]T, error) {
	fence, err := Compute(values, g)
	if err != nil {
		return nil, err
	}
	return fence.Outliers, nil
}

// DetectDefault is Detect with DefaultMultiplier.
func DetectDefault[T Number](values []T) ([]T, error) {
	return Detect(values, DefaultMultiplier)
}
