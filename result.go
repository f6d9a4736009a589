package clusterviz

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/clusterviz/distance"
	"github.com/hupe1980/clusterviz/model"
)

// Result is the outcome of a Cluster call together with the points it was
// computed from. Holding on to a Result is how a caller keeps a session:
// later queries reuse its points without reclustering.
type Result struct {
	// Points is the clustered set (shared with the caller, not copied).
	Points model.PointSet
	// Labels assigns each point, in order, to a centroid.
	Labels model.Labels
	// Centroids holds exactly K() cluster centers.
	Centroids []model.Point
	// Iterations is the number of assign/update rounds executed.
	Iterations int
	// Converged is false when the iteration limit was reached.
	Converged bool
	// Seed is the seed the run's random source was built from
	// (0 when a caller-supplied *rand.Rand was used).
	Seed int64
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.Centroids) }

// Dim returns the dimension of the clustered points.
func (r *Result) Dim() int { return r.Points.Dim() }

// ClusteringResult returns the labels/centroids pair.
func (r *Result) ClusteringResult() model.ClusteringResult {
	return model.ClusteringResult{Labels: r.Labels, Centroids: r.Centroids}
}

// Members returns the indexes of the points labeled l.
// The bitmap is built from Labels on every call.
func (r *Result) Members(l model.Label) *roaring.Bitmap {
	rb := roaring.New()
	for i, label := range r.Labels {
		if label == l {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// Sizes returns the number of points in each cluster.
func (r *Result) Sizes() []int {
	return r.Labels.Count(r.K())
}

// Inertia returns the sum of squared distances from each point to the
// centroid of its label.
func (r *Result) Inertia() float64 {
	var sum float64
	for i, p := range r.Points {
		sum += distance.SquaredEuclidean(p, r.Centroids[r.Labels[i]])
	}
	return sum
}

// Nearest answers a nearest-neighbor query against the clustered points.
// The returned label is the cluster of the neighbor.
func (r *Result) Nearest(ctx context.Context, query model.Point, optFns ...Option) (model.QueryResult, model.Label, error) {
	if r.K() == 0 {
		return model.QueryResult{}, 0, ErrNoClusters
	}
	q, err := Nearest(ctx, r.Points, query, optFns...)
	if err != nil {
		return model.QueryResult{}, 0, err
	}
	return q, r.Labels[q.Index], nil
}
