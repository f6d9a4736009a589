// Package model defines core types used throughout clusterviz.
//
// # Geometry Types
//
//   - Point: fixed-length coordinate vector (float64)
//   - PointSet: ordered points of uniform dimension
//
// # Result Types
//
//   - Label: cluster index in [0, k)
//   - Labels: one label per point, parallel to the PointSet
//   - ClusteringResult: labels plus k centroids
//   - QueryResult: index, point and distance of a nearest neighbor
//
// Points are treated as immutable. Algorithms never write into a PointSet
// they receive; anything they return is freshly allocated.
package model
