package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/clusterviz/distance"
	"github.com/hupe1980/clusterviz/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoint generates one point with coordinates in [minVal, maxVal).
func (r *RNG) UniformPoint(dim int, minVal, maxVal float64) model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniform(dim, minVal, maxVal)
}

// UniformPoints generates num points with coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(num, dim int, minVal, maxVal float64) model.PointSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make(model.PointSet, num)
	for i := range points {
		points[i] = r.uniform(dim, minVal, maxVal)
	}
	return points
}

func (r *RNG) uniform(dim int, minVal, maxVal float64) model.Point {
	span := maxVal - minVal
	p := make(model.Point, dim)
	for j := range p {
		p[j] = minVal + r.rand.Float64()*span
	}
	return p
}

// ClusteredPoints generates perCenter points around each center with
// Gaussian noise of the given standard deviation. The second return value
// holds the index of the center each point was drawn from.
func (r *RNG) ClusteredPoints(centers []model.Point, perCenter int, stddev float64) (model.PointSet, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make(model.PointSet, 0, len(centers)*perCenter)
	truth := make([]int, 0, cap(points))
	for c, center := range centers {
		for range perCenter {
			p := make(model.Point, len(center))
			for j := range p {
				p[j] = center[j] + r.rand.NormFloat64()*stddev
			}
			points = append(points, p)
			truth = append(truth, c)
		}
	}
	return points, truth
}

// ExactNearest returns the index of the first point with minimal Euclidean
// distance to query, or -1 for an empty set.
func ExactNearest(points model.PointSet, query model.Point) int {
	best := -1
	var bestDist float64
	for i, p := range points {
		d := distance.Euclidean(query, p)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// SamePartition reports whether two labelings group the points identically,
// regardless of label numbering.
func SamePartition(a model.Labels, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	fwd := make(map[model.Label]int)
	rev := make(map[int]model.Label)
	for i := range a {
		if v, ok := fwd[a[i]]; ok && v != b[i] {
			return false
		}
		if v, ok := rev[b[i]]; ok && v != a[i] {
			return false
		}
		fwd[a[i]] = b[i]
		rev[b[i]] = a[i]
	}
	return true
}
