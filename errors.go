package recgo

import (
	"errors"
)

var (
	// ErrInvalidK is returned when k is negative. k == 0 is valid and
	// yields an empty result.
	ErrInvalidK = errors.New("recgo: k must not be negative")

	// ErrNoValidCandidates is returned when every candidate in a
	// non-empty batch was skipped (dimension mismatch or missing
	// baseline).
	ErrNoValidCandidates = errors.New("recgo: no valid candidates")

	// ErrMissingBaselines is returned by New when the chosen metric
	// requires baselines but WithBaselines was not configured.
	ErrMissingBaselines = errors.New("recgo: metric requires baselines, use WithBaselines")
)

// Errors raised inside the stats and similarity packages propagate
// through the engine unchanged, so callers can match them directly:
//
//	var dm *stats.ErrDimensionMismatch
//	if errors.As(err, &dm) { ... }
//
//	var degen *similarity.ErrDegenerateInput
//	if errors.As(err, &degen) { ... }
