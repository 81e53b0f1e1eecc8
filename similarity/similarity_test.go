package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recgo/stats"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Reference", []float32{3, 45, 7, 2}, []float32{2, 54, 13, 15}, 0.97228426},
		{"Identity", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"Orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"Opposite", []float32{1, 2}, []float32{-1, -2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}

	t.Run("Symmetric", func(t *testing.T) {
		a := []float32{0.2, 0.8, 0.5}
		b := []float32{0.9, 0.1, 0.4}
		ab, err := Cosine(a, b)
		require.NoError(t, err)
		ba, err := Cosine(b, a)
		require.NoError(t, err)
		assert.InDelta(t, ab, ba, 1e-7)
	})

	t.Run("ZeroNorm", func(t *testing.T) {
		_, err := Cosine([]float32{0, 0}, []float32{1, 2})
		var degen *ErrDegenerateInput
		assert.ErrorAs(t, err, &degen)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Cosine([]float32{1, 2, 3}, []float32{1, 2})
		var dm *stats.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 3, dm.Expected)
		assert.Equal(t, 2, dm.Actual)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Cosine(nil, nil)
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Reference", []float32{3, 45, 7, 2}, []float32{2, 54, 13, 15}, 0.9675213},
		{"Identity", []float32{1, 2, 3, 4}, []float32{1, 2, 3, 4}, 1},
		{"Negation", []float32{1, 2, 3, 4}, []float32{-1, -2, -3, -4}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pearson(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}

	t.Run("ZeroVariance", func(t *testing.T) {
		_, err := Pearson([]float32{5, 5, 5}, []float32{1, 2, 3})
		var degen *ErrDegenerateInput
		assert.ErrorAs(t, err, &degen)
	})
}

func TestPearsonBaseline(t *testing.T) {
	t.Run("ResidualCosine", func(t *testing.T) {
		a := []float32{4, 3, 5}
		b := []float32{5, 2, 4}
		baseA := []float32{3, 3, 3}
		baseB := []float32{3, 3, 3}

		got, err := PearsonBaseline(a, b, baseA, baseB)
		require.NoError(t, err)

		// Equals the cosine of the residual vectors (1,0,2) and (2,-1,1).
		expected, err := Cosine([]float32{1, 0, 2}, []float32{2, -1, 1})
		require.NoError(t, err)
		assert.InDelta(t, expected, got, 1e-6)
	})

	t.Run("ZeroResiduals", func(t *testing.T) {
		a := []float32{3, 3}
		_, err := PearsonBaseline(a, []float32{1, 2}, a, []float32{0, 0})
		var degen *ErrDegenerateInput
		assert.ErrorAs(t, err, &degen)
	})

	t.Run("BaselineDimensionMismatch", func(t *testing.T) {
		_, err := PearsonBaseline([]float32{1, 2}, []float32{3, 4}, []float32{0}, []float32{0, 0})
		var dm *stats.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})
}

func TestSpearman(t *testing.T) {
	t.Run("Monotonic", func(t *testing.T) {
		// Any monotonically increasing relationship has rank correlation 1.
		got, err := Spearman([]float32{1, 2, 3, 4}, []float32{10, 100, 1000, 10000})
		require.NoError(t, err)
		assert.InDelta(t, 1, got, 1e-5)
	})

	t.Run("Reversed", func(t *testing.T) {
		got, err := Spearman([]float32{1, 2, 3, 4}, []float32{4, 3, 2, 1})
		require.NoError(t, err)
		assert.InDelta(t, -1, got, 1e-5)
	})

	t.Run("Reference", func(t *testing.T) {
		got, err := Spearman([]float32{3, 45, 7, 2}, []float32{2, 54, 13, 15})
		require.NoError(t, err)
		assert.InDelta(t, 0.4, got, 1e-5)
	})

	t.Run("Ties", func(t *testing.T) {
		// Tied values share the average of the ranks they occupy, so a
		// vector tied with itself still correlates perfectly.
		got, err := Spearman([]float32{1, 2, 2, 3}, []float32{1, 2, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1, got, 1e-5)
	})

	t.Run("Constant", func(t *testing.T) {
		_, err := Spearman([]float32{1, 1, 1}, []float32{1, 2, 3})
		var degen *ErrDegenerateInput
		assert.ErrorAs(t, err, &degen)
	})
}

func TestFractionalRanks(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float32
		expected []float32
	}{
		{"Distinct", []float32{3, 45, 7, 2}, []float32{2, 4, 3, 1}},
		{"Ties", []float32{1, 2, 2, 3}, []float32{1, 2.5, 2.5, 4}},
		{"AllTied", []float32{5, 5, 5}, []float32{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fractionalRanks(tt.xs))
		})
	}
}

func TestJaccard(t *testing.T) {
	t.Run("Reference", func(t *testing.T) {
		got, err := Jaccard([]int8{3, 45, 7, 2}, []int8{2, 54, 13, 15})
		require.NoError(t, err)
		assert.InDelta(t, 1.0/7.0, got, 1e-5)
	})

	t.Run("Identical", func(t *testing.T) {
		got, err := Jaccard([]string{"a", "b"}, []string{"b", "a"})
		require.NoError(t, err)
		assert.InDelta(t, 1, got, 1e-6)
	})

	t.Run("Disjoint", func(t *testing.T) {
		got, err := Jaccard([]int{1, 2}, []int{3, 4})
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-6)
	})

	t.Run("Duplicates", func(t *testing.T) {
		got, err := Jaccard([]int{1, 1, 2}, []int{2, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.0/3.0, got, 1e-5)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Jaccard([]int{}, []int{1})
		assert.ErrorIs(t, err, stats.ErrEmptyInput)
	})
}

func TestMinkowski(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		p        float32
		expected float32
	}{
		{"Euclidean", []float32{0, 0}, []float32{3, 4}, 2, 5},
		{"Manhattan", []float32{0, 0}, []float32{3, 4}, 1, 7},
		{"Reference", []float32{3, 45, 7, 2}, []float32{2, 54, 13, 15}, 2.1, 16.566133},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Minkowski(tt.a, tt.b, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-4)
		})
	}

	t.Run("InvalidOrder", func(t *testing.T) {
		_, err := Minkowski([]float32{1}, []float32{2}, 0)
		var ip *ErrInvalidParameter
		require.ErrorAs(t, err, &ip)
		assert.Equal(t, "p", ip.Name)

		_, err = Minkowski([]float32{1}, []float32{2}, -1)
		assert.ErrorAs(t, err, &ip)
	})
}

func TestEuclidean(t *testing.T) {
	got, err := Euclidean([]float32{3, 45, 7, 2}, []float32{2, 54, 13, 15})
	require.NoError(t, err)
	assert.InDelta(t, 16.941074, got, 1e-4)
}

func TestMSD(t *testing.T) {
	t.Run("Reference", func(t *testing.T) {
		got, err := MSD([]float32{3, 45, 7, 2}, []float32{2, 54, 13, 15})
		require.NoError(t, err)
		assert.InDelta(t, 71.75, got, 1e-4)
	})

	t.Run("IdenticalIsZero", func(t *testing.T) {
		got, err := MSD([]float32{1, 2, 3}, []float32{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-7)
	})

	t.Run("NonNegative", func(t *testing.T) {
		got, err := MSD([]float32{-5, 3}, []float32{2, -9})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, float32(0))
	})
}

func TestMSDSimilarity(t *testing.T) {
	got, err := MSDSimilarity([]float32{3, 45, 7, 2}, []float32{2, 54, 13, 15})
	require.NoError(t, err)
	assert.InDelta(t, 0.0137457, got, 1e-5)
}

func TestExponentialDecay(t *testing.T) {
	got, err := ExponentialDecay(23.5, 44.333332, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.12451448, got, 1e-5)

	_, err = ExponentialDecay(1, 2, 0)
	var ip *ErrInvalidParameter
	assert.ErrorAs(t, err, &ip)
}
