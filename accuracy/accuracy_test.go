package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recgo/model"
	"github.com/hupe1980/recgo/stats"
)

func TestMAE(t *testing.T) {
	got, err := MAE([]float32{2, 4, 6}, []float32{1, 5, 9})
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, got, 1e-5)

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := MAE([]float32{1}, []float32{1, 2})
		var dm *stats.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := MAE(nil, nil)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}

func TestMSE(t *testing.T) {
	got, err := MSE([]float32{2, 4, 6}, []float32{1, 5, 9})
	require.NoError(t, err)
	assert.InDelta(t, 11.0/3.0, got, 1e-5)
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float32{0, 0}, []float32{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.5355339, got, 1e-4)

	t.Run("PerfectPrediction", func(t *testing.T) {
		got, err := RMSE([]float32{1, 2, 3}, []float32{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-7)
	})
}

func TestHitRate(t *testing.T) {
	got, err := HitRate(8, 4)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 1e-6)

	_, err = HitRate(1, 0)
	var ic *ErrInvalidCount
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, "users", ic.Name)
}

func TestARHR(t *testing.T) {
	got, err := ARHR([]int{1, 2, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.875, got, 1e-5)

	t.Run("NoHits", func(t *testing.T) {
		got, err := ARHR(nil, 5)
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-7)
	})

	t.Run("InvalidRank", func(t *testing.T) {
		_, err := ARHR([]int{0}, 1)
		var ic *ErrInvalidCount
		assert.ErrorAs(t, err, &ic)
	})
}

func TestCumulativeHitRate(t *testing.T) {
	got, err := CumulativeHitRate(
		[]model.ItemID{1, 2, 3, 4},
		[]model.ItemID{2, 4, 9},
	)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, got, 1e-5)

	t.Run("EmptyRelevant", func(t *testing.T) {
		_, err := CumulativeHitRate([]model.ItemID{1}, nil)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}
