// Package math32 provides float32 vector reductions shared by the
// similarity and stats packages. This is an internal package - external
// users should use the similarity package.
package math32

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Norm calculates the Euclidean (L2) norm of a vector.
func Norm(a []float32) float32 {
	return Sqrt(Dot(a, a))
}

// SquaredL2 calculates the sum of squared differences between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// Sum calculates the sum of all elements.
func Sum(a []float32) float32 {
	var ret float32
	for _, v := range a {
		ret += v
	}

	return ret
}

// Sqrt is a float32 convenience wrapper around math.Sqrt.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Pow is a float32 convenience wrapper around math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Abs is a float32 convenience wrapper around math.Abs.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
