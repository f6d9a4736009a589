// Package flat provides exact nearest-neighbor search by linear scan.
package flat

import (
	"github.com/hupe1980/clusterviz/distance"
	"github.com/hupe1980/clusterviz/model"
)

// Flat is an exact index over a fixed point set.
// It holds the set by reference and never modifies it.
type Flat struct {
	points model.PointSet
	dim    int
}

// New creates a flat index over points.
// It returns *model.ErrDimensionMismatch if the points are not uniform.
// An empty set is accepted; queries against it fail with model.ErrEmptyInput.
func New(points model.PointSet) (*Flat, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	return &Flat{points: points, dim: points.Dim()}, nil
}

func (*Flat) Name() string { return "Flat" }

// Len returns the number of indexed points.
func (f *Flat) Len() int { return len(f.points) }

// Dim returns the dimension of the indexed points (0 when empty).
func (f *Flat) Dim() int { return f.dim }

// Points returns the indexed set.
func (f *Flat) Points() model.PointSet { return f.points }

// Nearest returns the indexed point closest to query.
func (f *Flat) Nearest(query model.Point) (model.QueryResult, error) {
	if len(f.points) == 0 {
		return model.QueryResult{}, model.ErrEmptyInput
	}
	if len(query) != f.dim {
		return model.QueryResult{}, &model.ErrDimensionMismatch{Expected: f.dim, Actual: len(query), Index: -1}
	}
	return scan(f.points, query), nil
}

// Nearest finds the point in points closest to query.
//
// Exact ties resolve to the lowest index. points must be uniform; the query
// dimension is checked against the first point.
func Nearest(points model.PointSet, query model.Point) (model.QueryResult, error) {
	if len(points) == 0 {
		return model.QueryResult{}, model.ErrEmptyInput
	}
	if dim := points.Dim(); len(query) != dim {
		return model.QueryResult{}, &model.ErrDimensionMismatch{Expected: dim, Actual: len(query), Index: -1}
	}
	return scan(points, query), nil
}

// scan requires len(points) > 0.
func scan(points model.PointSet, query model.Point) model.QueryResult {
	best := -1
	var minDist float64
	for i, p := range points {
		d := distance.Euclidean(query, p)
		// Strict comparison keeps the first minimizer.
		if best < 0 || d < minDist {
			minDist = d
			best = i
		}
	}
	return model.QueryResult{Index: best, Point: points[best], Distance: minDist}
}
