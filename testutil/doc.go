// Package testutil provides testing utilities for recgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random feature vectors and items
// with a reproducible seed:
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 64)
//	items := rng.UniformItems(1000, 64)
package testutil
