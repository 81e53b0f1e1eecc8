package recgo

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/recgo/model"
	"github.com/hupe1980/recgo/similarity"
	"github.com/hupe1980/recgo/stats"
)

// errNoBaseline marks a candidate without a baseline estimate. It is
// recovered locally like a dimension mismatch.
var errNoBaseline = errors.New("recgo: no baseline for candidate")

// Engine ranks candidate items against a query item with a fixed
// metric. An Engine is immutable after construction and safe for
// concurrent use.
type Engine struct {
	choice    similarity.Choice
	score     similarity.Func // nil when the metric is baseline-driven
	direction similarity.Direction
	opts      options
}

// New creates an Engine for the chosen metric. Unknown kinds and
// invalid metric parameters are rejected here, before any computation;
// similarity.KindPearsonBaseline additionally requires WithBaselines.
func New(choice similarity.Choice, optFns ...Option) (*Engine, error) {
	opts := applyOptions(optFns)

	score, direction, err := similarity.Provider(choice)
	if err != nil {
		if !errors.Is(err, similarity.ErrBaselineRequired) {
			return nil, err
		}
		if opts.queryBaseline == nil || opts.baselineLookup == nil {
			return nil, ErrMissingBaselines
		}
	}

	return &Engine{
		choice:    choice,
		score:     score,
		direction: direction,
		opts:      opts,
	}, nil
}

// Choice returns the metric choice the engine was built with.
func (e *Engine) Choice() similarity.Choice {
	return e.choice
}

// Direction returns the ranking direction of the engine's metric.
func (e *Engine) Direction() similarity.Direction {
	return e.direction
}

// KNN scores every candidate against the query, ranks them by the
// engine's metric and returns at most k neighbors, best first.
//
// Candidates whose dimensionality does not match the query (or that
// lack a baseline, for baseline-driven metrics) are skipped with a
// warning; if a non-empty batch yields no scorable candidate the call
// fails with ErrNoValidCandidates. Any other scoring failure aborts
// the call with the underlying typed error.
//
// k == 0 and an empty candidate slice both yield an empty result. If k
// exceeds the number of valid candidates, all of them are returned.
// Ties are broken by candidate ID ascending, so identical inputs
// produce identical output.
func (e *Engine) KNN(ctx context.Context, query model.Item, candidates []model.Item, k int) (neighbors []model.Neighbor, err error) {
	start := time.Now()
	var scoredCount, skippedCount int
	defer func() {
		e.opts.metricsCollector.RecordSearch(k, scoredCount, skippedCount, time.Since(start), err)
		e.opts.logger.WithMetric(e.choice.Kind.String()).LogSearch(ctx, k, scoredCount, skippedCount, err)
	}()

	if k < 0 {
		return nil, ErrInvalidK
	}
	if k == 0 || len(candidates) == 0 {
		return nil, nil
	}

	scores := make([]float32, len(candidates))
	skips := make([]error, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.parallelism)

	for i := range candidates {
		i := i
		g.Go(func() error {
			// Coarse-grained cancellation between candidates.
			if err := gctx.Err(); err != nil {
				return err
			}

			score, err := e.scoreCandidate(query, candidates[i])
			if err != nil {
				if skippable(err) {
					skips[i] = err
					return nil
				}
				return err
			}

			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	neighbors = make([]model.Neighbor, 0, len(candidates))
	for i, candidate := range candidates {
		if skips[i] != nil {
			e.opts.logger.LogSkippedCandidate(ctx, uint32(candidate.ID), skips[i])
			skippedCount++
			continue
		}

		scored := candidate.WithResult(scores[i])
		score, _ := scored.Result()
		neighbors = append(neighbors, model.Neighbor{
			ID:     scored.ID,
			Values: scored.Values,
			Score:  score,
		})
	}
	scoredCount = len(neighbors)

	if scoredCount == 0 {
		return nil, ErrNoValidCandidates
	}

	slices.SortFunc(neighbors, e.compareNeighbors)
	if k < len(neighbors) {
		neighbors = neighbors[:k:k]
	}

	return neighbors, nil
}

// scoreCandidate computes the metric score for a single candidate.
func (e *Engine) scoreCandidate(query, candidate model.Item) (float32, error) {
	if e.score != nil {
		return e.score(query.Values, candidate.Values)
	}

	base, ok := e.opts.baselineLookup(candidate.ID)
	if !ok {
		return 0, errNoBaseline
	}

	return similarity.PearsonBaseline(query.Values, candidate.Values, e.opts.queryBaseline, base)
}

// compareNeighbors orders by score in the metric's direction, ties by
// candidate ID ascending.
func (e *Engine) compareNeighbors(a, b model.Neighbor) int {
	if a.Score != b.Score {
		if e.direction == similarity.Ascending {
			return cmp.Compare(a.Score, b.Score)
		}
		return cmp.Compare(b.Score, a.Score)
	}

	return cmp.Compare(a.ID, b.ID)
}

// skippable reports whether a scoring error excludes only this
// candidate instead of failing the batch.
func skippable(err error) bool {
	if errors.Is(err, errNoBaseline) {
		return true
	}

	var dm *stats.ErrDimensionMismatch
	return errors.As(err, &dm)
}
