package kmeans

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clusterviz/distance"
	"github.com/hupe1980/clusterviz/model"
)

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	// Perm returns a random permutation of [0, n).
	Perm(n int) []int
	// Intn returns a random integer in [0, n).
	Intn(n int) int
}

// Options bounds the iteration loop.
type Options struct {
	// MaxIters is the maximum number of assign/update rounds.
	// Values < 1 fall back to DefaultOptions.MaxIters.
	MaxIters int
	// Tol stops the loop once the summed centroid movement drops below it.
	Tol float64
}

// DefaultOptions mirrors the usual textbook settings.
var DefaultOptions = Options{
	MaxIters: 100,
	Tol:      1e-4,
}

// Result is the outcome of one Cluster call.
type Result struct {
	Labels    model.Labels
	Centroids []model.Point
	// Iterations is the number of assign/update rounds executed.
	Iterations int
	// Converged is false when MaxIters was exhausted.
	Converged bool
}

// Cluster partitions points into k clusters using Lloyd's algorithm.
//
// On convergence the returned centroids are the ones the labels were
// computed against (the update that triggered convergence is discarded).
// When MaxIters is exhausted the centroids are the last update, one step
// ahead of the labels.
func Cluster(points model.PointSet, k int, rng Source, opts Options) Result {
	maxIters := opts.MaxIters
	if maxIters < 1 {
		maxIters = DefaultOptions.MaxIters
	}

	centroids := initCentroids(points, k, rng)

	var labels model.Labels
	for iter := 0; iter < maxIters; iter++ {
		labels = Assign(points, centroids)
		next := update(points, labels, k, rng)

		if Movement(centroids, next) < opts.Tol {
			return Result{
				Labels:     labels,
				Centroids:  centroids,
				Iterations: iter + 1,
				Converged:  true,
			}
		}
		centroids = next
	}

	return Result{
		Labels:     labels,
		Centroids:  centroids,
		Iterations: maxIters,
	}
}

// initCentroids picks k distinct input points uniformly without replacement.
func initCentroids(points model.PointSet, k int, rng Source) []model.Point {
	perm := rng.Perm(len(points))
	centroids := make([]model.Point, k)
	for i := 0; i < k; i++ {
		centroids[i] = points[perm[i]].Clone()
	}
	return centroids
}

// Assign labels every point with the index of its closest centroid.
// Exact ties go to the lowest centroid index.
func Assign(points model.PointSet, centroids []model.Point) model.Labels {
	labels := make(model.Labels, len(points))
	for i, p := range points {
		labels[i] = model.Label(Closest(p, centroids))
	}
	return labels
}

// Closest returns the index of the centroid nearest to p, or -1 if there
// are no centroids.
func Closest(p model.Point, centroids []model.Point) int {
	best := -1
	var minDist float64
	for j, c := range centroids {
		d := distance.Euclidean(p, c)
		if best < 0 || d < minDist {
			minDist = d
			best = j
		}
	}
	return best
}

// update recomputes every centroid as the mean of its points. A label with
// no points is reseeded with a random input point.
func update(points model.PointSet, labels model.Labels, k int, rng Source) []model.Point {
	dim := points.Dim()
	sums := make([]model.Point, k)
	counts := make([]int, k)
	for j := range sums {
		sums[j] = make(model.Point, dim)
	}

	for i, p := range points {
		l := labels[i]
		floats.Add(sums[l], p)
		counts[l]++
	}

	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			floats.Scale(1/float64(counts[j]), sums[j])
		} else {
			sums[j] = points[rng.Intn(len(points))].Clone()
		}
	}
	return sums
}

// Movement sums the distances between centroids paired by index.
func Movement(old, next []model.Point) float64 {
	var total float64
	for j := range old {
		total += distance.Euclidean(old[j], next[j])
	}
	return total
}
