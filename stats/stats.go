// Package stats provides the statistics primitives used by the
// similarity metrics: mean, dispersion measures, covariance and
// percentile/quartile estimation over float32 samples.
package stats

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/recgo/internal/math32"
)

// ErrEmptyInput is returned when a primitive receives an empty sample.
var ErrEmptyInput = errors.New("stats: empty input")

// ErrDimensionMismatch indicates two samples of unequal length where
// equal length is required.
type ErrDimensionMismatch struct {
	Expected int // Expected length
	Actual   int // Actual length
}

// Error returns the error message for dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("stats: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidRange indicates a percentile outside [0, 100].
type ErrInvalidRange struct {
	Pct float32
}

// Error returns the error message for an out-of-range percentile.
func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("stats: percentile out of range [0,100]: %v", e.Pct)
}

// Mean calculates the arithmetic mean of the sample.
func Mean(xs []float32) (float32, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}

	return math32.Sum(xs) / float32(len(xs)), nil
}

// Variance calculates the population variance of the sample.
// A single-element sample has zero variance.
func Variance(xs []float32) (float32, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}

	var sum float32
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}

	return sum / float32(len(xs)), nil
}

// StdDev calculates the population standard deviation of the sample.
func StdDev(xs []float32) (float32, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math32.Sqrt(v), nil
}

// StdDevPct calculates the standard deviation as a percentage of the mean.
func StdDevPct(xs []float32) (float32, error) {
	sd, err := StdDev(xs)
	if err != nil {
		return 0, err
	}
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}

	return (sd / mean) * 100, nil
}

// Covariance calculates the population covariance of two samples of
// equal length.
func Covariance(xs, ys []float32) (float32, error) {
	if len(xs) != len(ys) {
		return 0, &ErrDimensionMismatch{Expected: len(xs), Actual: len(ys)}
	}

	meanX, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	meanY, err := Mean(ys)
	if err != nil {
		return 0, err
	}

	var sum float32
	for i := range xs {
		sum += (xs[i] - meanX) * (ys[i] - meanY)
	}

	return sum / float32(len(xs)), nil
}

// Percentile calculates the pct-th percentile of a sample that is
// already sorted in ascending order, interpolating linearly between
// the floor and ceiling ranks. Sortedness is the caller's
// responsibility and is not verified.
func Percentile(sorted []float32, pct float32) (float32, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptyInput
	}
	if pct < 0 || pct > 100 {
		return 0, &ErrInvalidRange{Pct: pct}
	}
	if len(sorted) == 1 {
		return sorted[0], nil
	}
	if pct == 100 {
		return sorted[len(sorted)-1], nil
	}

	rank := (pct / 100) * float32(len(sorted)-1)
	lrank := float32(int(rank))
	n := int(lrank)
	lo := sorted[n]

	return lo + (sorted[n+1]-lo)*(rank-lrank), nil
}

// Median calculates the median of a sample that is already sorted in
// ascending order.
func Median(sorted []float32) (float32, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptyInput
	}

	return medianSorted(sorted), nil
}

// Quartiles calculates (Q1, Q3) of a sample that is already sorted in
// ascending order. Quartiles are the medians of the lower and upper
// halves; with an odd number of samples the overall median belongs to
// neither half.
func Quartiles(sorted []float32) (float32, float32, error) {
	if len(sorted) == 0 {
		return 0, 0, ErrEmptyInput
	}

	n := len(sorted)
	lower := sorted[:n/2]
	upper := sorted[(n+1)/2:]
	if len(lower) == 0 {
		// Single sample: both quartiles collapse onto it.
		return sorted[0], sorted[0], nil
	}

	return medianSorted(lower), medianSorted(upper), nil
}

// medianSorted assumes a non-empty ascending sample.
func medianSorted(sorted []float32) float32 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MedianAbsDev calculates the median absolute deviation of the sample,
// scaled to be a consistent estimator of the standard deviation. The
// input does not need to be sorted.
func MedianAbsDev(xs []float32) (float32, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	med := medianSorted(sorted)

	devs := make([]float32, len(xs))
	for i, x := range xs {
		devs[i] = math32.Abs(med - x)
	}
	slices.Sort(devs)

	// The scale factor is consistent with how R and other statistics
	// packages treat the MAD.
	return medianSorted(devs) * 1.4826, nil
}

// MedianAbsDevPct calculates the median absolute deviation as a
// percentage of the median. The input does not need to be sorted.
func MedianAbsDevPct(xs []float32) (float32, error) {
	mad, err := MedianAbsDev(xs)
	if err != nil {
		return 0, err
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	return (mad / medianSorted(sorted)) * 100, nil
}
