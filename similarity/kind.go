package similarity

import (
	"errors"
	"fmt"
	"math"
)

// ErrBaselineRequired is returned by Provider for KindPearsonBaseline,
// which cannot be expressed as a pairwise function.
var ErrBaselineRequired = errors.New("similarity: pearson baseline requires baseline vectors")

// Kind identifies one metric from the closed metric family.
type Kind int

// Constants representing the supported metrics.
const (
	KindCosine Kind = iota
	KindPearson
	KindPearsonBaseline
	KindSpearman
	KindJaccard
	KindMinkowski
	KindEuclidean
	KindMSD
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindCosine:
		return "Cosine"
	case KindPearson:
		return "Pearson"
	case KindPearsonBaseline:
		return "PearsonBaseline"
	case KindSpearman:
		return "Spearman"
	case KindJaccard:
		return "Jaccard"
	case KindMinkowski:
		return "Minkowski"
	case KindEuclidean:
		return "Euclidean"
	case KindMSD:
		return "MSD"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Direction describes how scores of a metric order candidates.
type Direction int

const (
	// Descending ranks higher scores as more similar (similarity metrics).
	Descending Direction = iota
	// Ascending ranks lower scores as more similar (distance metrics).
	Ascending
)

// String returns a string representation of the Direction.
func (d Direction) String() string {
	if d == Ascending {
		return "Ascending"
	}

	return "Descending"
}

// ErrUnknownKind indicates a metric kind outside the supported family.
type ErrUnknownKind struct {
	Kind Kind
}

// Error returns the error message for an unknown metric kind.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("similarity: unknown metric kind: %v", e.Kind)
}

// Func is a function type for pairwise score calculation.
type Func func(a, b []float32) (float32, error)

// Choice selects a metric from the closed family, together with any
// metric parameters.
type Choice struct {
	// Kind is the metric discriminant.
	Kind Kind

	// P is the Minkowski order. It is required for KindMinkowski and
	// ignored by every other metric.
	P float32
}

// Validate checks the choice without resolving it to a function.
// KindPearsonBaseline is a valid choice even though it has no pairwise
// provider; the engine supplies the baselines.
func (c Choice) Validate() error {
	_, _, err := Provider(c)
	if errors.Is(err, ErrBaselineRequired) {
		return nil
	}

	return err
}

// Provider resolves a choice to its score function and ranking
// direction. Unknown kinds and invalid parameters are rejected here,
// before any computation begins.
//
// KindPearsonBaseline cannot be resolved to a pairwise function
// because it needs per-vector baselines; use PearsonBaseline directly
// or the engine's baseline support.
func Provider(c Choice) (Func, Direction, error) {
	switch c.Kind {
	case KindCosine:
		return Cosine, Descending, nil
	case KindPearson:
		return Pearson, Descending, nil
	case KindSpearman:
		return Spearman, Descending, nil
	case KindPearsonBaseline:
		return nil, Descending, ErrBaselineRequired
	case KindJaccard:
		return Jaccard[float32], Descending, nil
	case KindMinkowski:
		p := c.P
		if p <= 0 || math.IsNaN(float64(p)) {
			return nil, Ascending, &ErrInvalidParameter{Name: "p", Value: p}
		}
		return func(a, b []float32) (float32, error) {
			return Minkowski(a, b, p)
		}, Ascending, nil
	case KindEuclidean:
		return Euclidean, Ascending, nil
	case KindMSD:
		return MSD, Ascending, nil
	default:
		return nil, Descending, &ErrUnknownKind{Kind: c.Kind}
	}
}
