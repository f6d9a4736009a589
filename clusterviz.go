package clusterviz

import (
	"context"
	"time"

	"github.com/hupe1980/clusterviz/index/flat"
	"github.com/hupe1980/clusterviz/internal/kmeans"
	"github.com/hupe1980/clusterviz/model"
)

// Cluster partitions points into k clusters with Lloyd's k-means.
//
// points must share one dimension and satisfy 1 <= k <= len(points);
// violations return *ErrDimensionMismatch or *ErrInvalidK. The points are
// kept by reference in the returned Result and are never modified.
//
// ctx only carries logging context; the computation itself is synchronous
// and not cancellable.
func Cluster(ctx context.Context, points model.PointSet, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	logger := o.logger.WithDimension(points.Dim())

	start := time.Now()
	res, err := cluster(points, k, &o)
	duration := time.Since(start)
	err = translateError(err)

	if err != nil {
		o.metricsCollector.RecordCluster(k, 0, false, duration, err)
		logger.LogCluster(ctx, k, len(points), 0, false, err)
		return nil, err
	}

	o.metricsCollector.RecordCluster(k, res.Iterations, res.Converged, duration, nil)
	logger.LogCluster(ctx, k, len(points), res.Iterations, res.Converged, nil)
	return res, nil
}

func cluster(points model.PointSet, k int, o *options) (*Result, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateK(k, len(points)); err != nil {
		return nil, err
	}

	rng, seed := o.source()
	out := kmeans.Cluster(points, k, rng, kmeans.Options{
		MaxIters: o.maxIters,
		Tol:      o.tol,
	})

	return &Result{
		Points:     points,
		Labels:     out.Labels,
		Centroids:  out.Centroids,
		Iterations: out.Iterations,
		Converged:  out.Converged,
		Seed:       seed,
	}, nil
}

// Nearest returns the point in points closest to query. Exact ties resolve
// to the lowest index.
//
// It returns ErrEmptyInput for an empty set and *ErrDimensionMismatch when
// the set is not uniform or the query has the wrong dimension.
func Nearest(ctx context.Context, points model.PointSet, query model.Point, optFns ...Option) (model.QueryResult, error) {
	o := applyOptions(optFns)

	start := time.Now()
	res, err := nearest(points, query)
	duration := time.Since(start)
	err = translateError(err)

	o.metricsCollector.RecordNearest(duration, err)
	o.logger.WithDimension(len(query)).LogNearest(ctx, len(points), res.Index, err)
	return res, err
}

func nearest(points model.PointSet, query model.Point) (model.QueryResult, error) {
	idx, err := flat.New(points)
	if err != nil {
		return model.QueryResult{}, err
	}
	return idx.Nearest(query)
}
