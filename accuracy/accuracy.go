// Package accuracy provides offline evaluation measures for
// recommendation output: pointwise prediction errors (MAE, MSE, RMSE)
// and top-N hit measures (hit rate, ARHR, cumulative hit rate).
package accuracy

import (
	"fmt"

	"github.com/hupe1980/recgo/internal/math32"
	"github.com/hupe1980/recgo/model"
	"github.com/hupe1980/recgo/stats"
)

// ErrInvalidCount indicates a non-positive denominator such as a zero
// user count.
type ErrInvalidCount struct {
	Name  string
	Value int
}

// Error returns the error message for an invalid count.
func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("accuracy: invalid %s: %d", e.Name, e.Value)
}

func checkPairs(predicted, actual []float32) error {
	if len(predicted) == 0 || len(actual) == 0 {
		return stats.ErrEmptyInput
	}
	if len(predicted) != len(actual) {
		return &stats.ErrDimensionMismatch{Expected: len(actual), Actual: len(predicted)}
	}

	return nil
}

// MAE calculates the mean absolute error between predicted and actual
// ratings.
func MAE(predicted, actual []float32) (float32, error) {
	if err := checkPairs(predicted, actual); err != nil {
		return 0, err
	}

	var sum float32
	for i := range actual {
		sum += math32.Abs(actual[i] - predicted[i])
	}

	return sum / float32(len(actual)), nil
}

// MSE calculates the mean squared error between predicted and actual
// ratings.
func MSE(predicted, actual []float32) (float32, error) {
	if err := checkPairs(predicted, actual); err != nil {
		return 0, err
	}

	return math32.SquaredL2(predicted, actual) / float32(len(actual)), nil
}

// RMSE calculates the root mean squared error between predicted and
// actual ratings.
func RMSE(predicted, actual []float32) (float32, error) {
	mse, err := MSE(predicted, actual)
	if err != nil {
		return 0, err
	}

	return math32.Sqrt(mse), nil
}

// HitRate calculates the fraction of users with at least one hit.
func HitRate(hits, users int) (float32, error) {
	if users <= 0 {
		return 0, &ErrInvalidCount{Name: "users", Value: users}
	}
	if hits < 0 {
		return 0, &ErrInvalidCount{Name: "hits", Value: hits}
	}

	return float32(hits) / float32(users), nil
}

// ARHR calculates the average reciprocal hit rate: hits that finish in
// top spots of a recommendation list score higher. Ranks are 1-based.
func ARHR(hitRanks []int, users int) (float32, error) {
	if users <= 0 {
		return 0, &ErrInvalidCount{Name: "users", Value: users}
	}

	var sum float32
	for _, rank := range hitRanks {
		if rank <= 0 {
			return 0, &ErrInvalidCount{Name: "rank", Value: rank}
		}
		sum += 1 / float32(rank)
	}

	return sum / float32(users), nil
}

// CumulativeHitRate calculates the fraction of relevant items that
// appear in the predicted list.
func CumulativeHitRate(predicted, relevant []model.ItemID) (float32, error) {
	if len(relevant) == 0 {
		return 0, stats.ErrEmptyInput
	}

	seen := make(map[model.ItemID]struct{}, len(relevant))
	for _, id := range relevant {
		seen[id] = struct{}{}
	}

	var hits int
	for _, id := range predicted {
		if _, ok := seen[id]; ok {
			hits++
			delete(seen, id)
		}
	}

	return float32(hits) / float32(len(relevant)), nil
}
