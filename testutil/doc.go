// Package testutil provides testing utilities for clusterviz.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe random source, point generators and a brute-force nearest
// neighbor reference.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(500, 3, 0, 1)
//	blobs, truth := rng.ClusteredPoints(centers, 20, 0.1)
//
// *RNG implements Perm and Intn, so it can drive k-means initialization
// directly.
//
// # Exact Search (Ground Truth)
//
//	want := testutil.ExactNearest(points, query)
package testutil
