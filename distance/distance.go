package distance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/clusterviz/model"
)

// Euclidean calculates the L2 distance between two points.
// Assumes points are the same length (caller's responsibility); gonum panics
// otherwise.
func Euclidean(a, b model.Point) float64 {
	return floats.Distance(a, b, 2)
}

// EuclideanChecked is Euclidean with an explicit dimension check.
func EuclideanChecked(a, b model.Point) (float64, error) {
	if len(a) != len(b) {
		return 0, &model.ErrDimensionMismatch{Expected: len(a), Actual: len(b), Index: -1}
	}
	return Euclidean(a, b), nil
}

// SquaredEuclidean calculates the squared L2 distance between two points.
// Assumes points are the same length.
func SquaredEuclidean(a, b model.Point) float64 {
	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}
