package similarity

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/recgo/internal/math32"
	"github.com/hupe1980/recgo/stats"
)

// ErrDegenerateInput indicates an input a metric cannot score, such as
// a zero-norm vector for cosine or a zero-variance vector for Pearson.
type ErrDegenerateInput struct {
	Reason string
}

// Error returns the error message for degenerate input.
func (e *ErrDegenerateInput) Error() string {
	return fmt.Sprintf("similarity: degenerate input: %s", e.Reason)
}

// ErrInvalidParameter indicates an invalid metric parameter, such as a
// non-positive Minkowski order.
type ErrInvalidParameter struct {
	Name  string
	Value float32
}

// Error returns the error message for an invalid parameter.
func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("similarity: invalid parameter %s: %v", e.Name, e.Value)
}

// checkVectors enforces the shared numeric contract: non-empty vectors
// of equal length. Violations surface as stats errors so that callers
// see a single taxonomy across the statistics and similarity layers.
func checkVectors(a, b []float32) error {
	if len(a) == 0 || len(b) == 0 {
		return stats.ErrEmptyInput
	}
	if len(a) != len(b) {
		return &stats.ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	return nil
}

// Cosine calculates the cosine similarity between two vectors, in
// [-1, 1]. Zero-norm vectors cannot be scored.
func Cosine(a, b []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	normA := math32.Norm(a)
	normB := math32.Norm(b)
	if normA == 0 || normB == 0 {
		return 0, &ErrDegenerateInput{Reason: "zero-norm vector"}
	}

	return math32.Dot(a, b) / (normA * normB), nil
}

// Pearson calculates the Pearson correlation coefficient between two
// vectors, in [-1, 1]. Zero-variance vectors cannot be scored.
func Pearson(a, b []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	meanA, err := stats.Mean(a)
	if err != nil {
		return 0, err
	}
	meanB, err := stats.Mean(b)
	if err != nil {
		return 0, err
	}

	var covariance, varianceA, varianceB float32
	for i := range a {
		devA := a[i] - meanA
		devB := b[i] - meanB

		covariance += devA * devB
		varianceA += devA * devA
		varianceB += devB * devB
	}

	if varianceA == 0 || varianceB == 0 {
		return 0, &ErrDegenerateInput{Reason: "zero-variance vector"}
	}

	return covariance / (math32.Sqrt(varianceA) * math32.Sqrt(varianceB)), nil
}

// PearsonBaseline calculates a bias-adjusted cosine-style similarity
// between two vectors, in [-1, 1]. Each value is first reduced to its
// residual against the corresponding baseline estimate (value minus
// baseline); the score is the cosine ratio of the residual vectors.
// All four vectors must have equal length.
func PearsonBaseline(a, b, baseA, baseB []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}
	if len(baseA) != len(a) {
		return 0, &stats.ErrDimensionMismatch{Expected: len(a), Actual: len(baseA)}
	}
	if len(baseB) != len(b) {
		return 0, &stats.ErrDimensionMismatch{Expected: len(b), Actual: len(baseB)}
	}

	var dot, normA, normB float32
	for i := range a {
		residualA := a[i] - baseA[i]
		residualB := b[i] - baseB[i]

		dot += residualA * residualB
		normA += residualA * residualA
		normB += residualB * residualB
	}

	if normA == 0 || normB == 0 {
		return 0, &ErrDegenerateInput{Reason: "zero-norm residuals"}
	}

	return dot / (math32.Sqrt(normA) * math32.Sqrt(normB)), nil
}

// Spearman calculates the Spearman rank correlation coefficient
// between two vectors, in [-1, 1]. Values are converted to ranks and
// tied values receive the average of the ranks they occupy (fractional
// ranking); the coefficient is the Pearson correlation of the ranks.
// Constant vectors produce tied ranks throughout and cannot be scored.
func Spearman(a, b []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	return Pearson(fractionalRanks(a), fractionalRanks(b))
}

// fractionalRanks assigns 1-based ranks, averaging ranks across ties.
func fractionalRanks(xs []float32) []float32 {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		switch {
		case xs[i] < xs[j]:
			return -1
		case xs[i] > xs[j]:
			return 1
		default:
			return 0
		}
	})

	ranks := make([]float32, len(xs))
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && xs[order[j+1]] == xs[order[i]] {
			j++
		}
		// Positions i..j hold the same value; each gets the mean rank.
		rank := float32(i+j)/2 + 1
		for ; i <= j; i++ {
			ranks[order[i]] = rank
		}
	}

	return ranks
}

// Jaccard calculates the Jaccard similarity between two sets of
// comparable elements, in [0, 1]. Duplicate elements within a slice
// are collapsed.
func Jaccard[E comparable](a, b []E) (float32, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, stats.ErrEmptyInput
	}

	setA := make(map[E]struct{}, len(a))
	for _, e := range a {
		setA[e] = struct{}{}
	}
	setB := make(map[E]struct{}, len(b))
	for _, e := range b {
		setB[e] = struct{}{}
	}

	var intersection int
	for e := range setA {
		if _, ok := setB[e]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float32(intersection) / float32(union), nil
}

// Minkowski calculates the Minkowski distance of order p between two
// vectors, in [0, inf). p must be positive; p=1 is the Manhattan
// distance and p=2 the Euclidean distance.
func Minkowski(a, b []float32, p float32) (float32, error) {
	if p <= 0 || math.IsNaN(float64(p)) {
		return 0, &ErrInvalidParameter{Name: "p", Value: p}
	}
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	var sum float32
	for i := range a {
		sum += math32.Pow(math32.Abs(a[i]-b[i]), p)
	}

	return math32.Pow(sum, 1/p), nil
}

// Euclidean calculates the Euclidean distance between two vectors, in
// [0, inf). It is equivalent to Minkowski with p=2.
func Euclidean(a, b []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	return math32.Sqrt(math32.SquaredL2(a, b)), nil
}

// MSD calculates the mean squared difference between two vectors, in
// [0, inf). Lower means more similar; the output is not normalized to
// [0, 1].
func MSD(a, b []float32) (float32, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}

	return math32.SquaredL2(a, b) / float32(len(a)), nil
}

// MSDSimilarity converts the mean squared difference into a similarity
// in (0, 1], calculated as 1/(MSD+1).
func MSDSimilarity(a, b []float32) (float32, error) {
	msd, err := MSD(a, b)
	if err != nil {
		return 0, err
	}

	return 1 / (msd + 1), nil
}

// ExponentialDecay calculates a similarity in (0, 1] between two scalar
// values based on a positive decay rate.
func ExponentialDecay(a, b, decayRate float32) (float32, error) {
	if decayRate <= 0 || math.IsNaN(float64(decayRate)) {
		return 0, &ErrInvalidParameter{Name: "decayRate", Value: decayRate}
	}

	return float32(math.Exp(float64(-math32.Abs(a-b) / decayRate))), nil
}
