// Package similarity provides the similarity and distance metrics used
// for ranking items: cosine, Pearson (plain and baseline-adjusted),
// Spearman, Jaccard, Minkowski, Euclidean and mean-squared-difference.
//
// # Metric Families
//
// Metrics fall into two directions that matter for ranking:
//
//   - Similarity metrics (higher = more similar): Cosine, Pearson,
//     PearsonBaseline, Spearman, Jaccard, MSDSimilarity
//   - Distance metrics (lower = more similar): Minkowski, Euclidean, MSD
//
// Each metric keeps its native output range; scores from different
// metrics are not comparable with each other.
//
// # Selection
//
// Metrics are selected through the closed Kind enumeration and the
// Choice struct, resolved once via Provider:
//
//	fn, dir, err := similarity.Provider(similarity.Choice{
//	    Kind: similarity.KindMinkowski,
//	    P:    2,
//	})
//
// Invalid parameters (unknown kind, non-positive Minkowski order) are
// rejected by Provider before any score is computed.
package similarity
