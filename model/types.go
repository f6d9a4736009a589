package model

import (
	"strconv"
	"strings"
)

// Point is an ordered, fixed-length sequence of coordinates.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that does not share its backing array.
func (p Point) Clone() Point {
	if p == nil {
		return nil
	}
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// String returns the point formatted as "[x, y, z]".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// PointSet is an ordered sequence of points sharing one dimension.
type PointSet []Point

// Dim returns the dimension of the set, taken from its first point.
// An empty set has dimension 0.
func (ps PointSet) Dim() int {
	if len(ps) == 0 {
		return 0
	}
	return len(ps[0])
}

// Validate reports the first point whose dimension differs from the first one.
func (ps PointSet) Validate() error {
	dim := ps.Dim()
	for i, p := range ps {
		if len(p) != dim {
			return &ErrDimensionMismatch{Expected: dim, Actual: len(p), Index: i}
		}
	}
	return nil
}

// Label identifies the cluster a point belongs to.
type Label int

// Labels holds one label per point, in PointSet order.
type Labels []Label

// Count returns the number of points carrying each label in [0, k).
func (ls Labels) Count(k int) []int {
	counts := make([]int, k)
	for _, l := range ls {
		if int(l) >= 0 && int(l) < k {
			counts[l]++
		}
	}
	return counts
}

// ClusteringResult is the output of a single k-means run.
type ClusteringResult struct {
	Labels    Labels
	Centroids []Point
}

// QueryResult is the output of a nearest-neighbor lookup.
type QueryResult struct {
	// Index is the position of the neighbor in the searched PointSet.
	Index int
	// Point is the neighbor itself (shared with the PointSet).
	Point Point
	// Distance is the Euclidean distance from the query to Point.
	Distance float64
}
