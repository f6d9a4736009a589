// Package distance provides the Euclidean distance used by clustering and
// nearest-neighbor search.
//
// Computation is delegated to gonum's floats package.
//
// # Usage
//
//	d := distance.Euclidean(a, b)              // panics on dimension mismatch
//	d, err := distance.EuclideanChecked(a, b)  // returns *model.ErrDimensionMismatch
package distance
