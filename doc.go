// Package recgo provides a small recommender toolkit for Go: a
// K-Nearest-Neighbors engine over a pluggable family of similarity and
// distance metrics, with the supporting statistics primitives in the
// stats package and accuracy measures in the accuracy package.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	engine, _ := recgo.New(similarity.Choice{Kind: similarity.KindCosine})
//
//	query := model.NewItem(0, []float32{0.9, 0.1, 0.4})
//	candidates := []model.Item{
//	    model.NewItem(1, []float32{0.8, 0.2, 0.3}),
//	    model.NewItem(2, []float32{0.1, 0.9, 0.7}),
//	}
//
//	neighbors, _ := engine.KNN(ctx, query, candidates, 1)
//	fmt.Println(neighbors[0].ID, neighbors[0].Score)
//
// # Ranking Semantics
//
// The engine applies the correct ranking direction per metric:
// similarity metrics (cosine, Pearson, Spearman, Jaccard) rank
// descending, distance metrics (Minkowski, Euclidean, MSD) ascending.
// Ties are broken by candidate ID ascending, so identical inputs
// always produce identical output order.
//
// Candidates whose dimensionality does not match the query are skipped
// with a warning rather than failing the whole batch; the call fails
// with ErrNoValidCandidates only when nothing scorable remains. All
// other scoring failures (degenerate vectors, invalid parameters)
// surface as typed errors - no default score is ever substituted.
//
// # Baseline-Adjusted Similarity
//
// KindPearsonBaseline scores residuals (value minus a per-element
// baseline estimate) and therefore needs baseline vectors for the
// query and every candidate:
//
//	engine, _ := recgo.New(
//	    similarity.Choice{Kind: similarity.KindPearsonBaseline},
//	    recgo.WithBaselines(queryBaseline, func(id model.ItemID) ([]float32, bool) {
//	        b, ok := baselines[id]
//	        return b, ok
//	    }),
//	)
//
// # Concurrency
//
// Candidate scoring is data-parallel and fans out across a bounded
// worker pool; WithParallelism controls the limit. Inputs are treated
// as read-only snapshots for the duration of a call, so an Engine is
// safe for concurrent use.
package recgo
