// Package clusterviz partitions point sets with k-means and answers
// nearest-neighbor queries against them.
//
// # Quick Start
//
//	ctx := context.Background()
//	points := model.PointSet{{0, 0, 0}, {0, 0, 1}, {10, 10, 10}, {10, 10, 11}}
//
//	res, err := clusterviz.Cluster(ctx, points, 2, clusterviz.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Labels, res.Centroids)
//
//	q, label, err := res.Nearest(ctx, model.Point{9, 9, 9})
//
// # Clustering
//
// Cluster runs Lloyd's algorithm: k distinct input points seed the
// centroids, then points are assigned to their closest centroid (ties go to
// the lowest index) and centroids move to the mean of their points until the
// summed centroid movement drops below the tolerance or the iteration limit
// is hit. A cluster that loses all its points is reseeded with a random input
// point.
//
// When the run converges, the returned centroids are the ones the labels
// were computed against. When the iteration limit is reached, the centroids
// are one update ahead of the labels.
//
// # Randomness
//
// Every run draws from an explicit source: WithSeed for reproducible runs,
// WithRand to share a caller-owned *rand.Rand. Without either, a time-based
// seed is used and reported in Result.Seed.
//
// # Sessions
//
// The package holds no global state. A *Result keeps the clustered points,
// so a caller that wants to query "the last clustering" simply keeps the
// Result around and calls Result.Nearest.
package clusterviz
