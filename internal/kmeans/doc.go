// Package kmeans implements Lloyd's k-means clustering over model.PointSet.
//
// The engine is a pure function of its inputs and the supplied random
// source: it keeps no state between calls and never validates its
// preconditions (1 <= k <= len(points), uniform dimension). Callers are
// expected to do that first.
package kmeans
