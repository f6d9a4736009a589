package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/clusterviz"
	"github.com/hupe1980/clusterviz/model"
	"github.com/hupe1980/clusterviz/pointio"
)

// readPoints loads a point file; "-" reads from in.
func readPoints(path string, dim int, in io.Reader) (model.PointSet, error) {
	if path == "" {
		return nil, fmt.Errorf("input file is required, use -f flag")
	}

	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	points, err := pointio.Parse(r, dim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse points: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no points in %s", path)
	}
	return points, nil
}

// runner executes library calls with the CLI's logging and metrics.
type runner struct {
	cfg     Config
	runID   string
	logger  *clusterviz.Logger
	metrics *clusterviz.BasicMetricsCollector
}

func newRunner(cfg Config, logOut io.Writer) (*runner, error) {
	logger, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	return &runner{
		cfg:     cfg,
		runID:   runID,
		logger:  logger.WithRunID(runID),
		metrics: &clusterviz.BasicMetricsCollector{},
	}, nil
}

func (r *runner) options() []clusterviz.Option {
	return []clusterviz.Option{
		clusterviz.WithMaxIters(r.cfg.MaxIters),
		clusterviz.WithTolerance(r.cfg.Tol),
		clusterviz.WithLogger(r.logger),
		clusterviz.WithMetricsCollector(r.metrics),
	}
}

// cluster runs Restarts independently seeded k-means runs concurrently and
// keeps the one with the lowest inertia. Seeds are consecutive from the base
// seed, so a fixed seed reproduces the whole batch.
func (r *runner) cluster(ctx context.Context, points model.PointSet, k int) (*clusterviz.Result, error) {
	if err := r.cfg.boundK(k, len(points)); err != nil {
		return nil, err
	}

	restarts := max(r.cfg.Restarts, 1)
	base := r.cfg.baseSeed()
	results := make([]*clusterviz.Result, restarts)

	g, gctx := errgroup.WithContext(ctx)
	for i := range restarts {
		g.Go(func() error {
			opts := append(r.options(), clusterviz.WithSeed(base+int64(i)))
			res, err := clusterviz.Cluster(gctx, points, k, opts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.Inertia() < best.Inertia() {
			best = res
		}
	}

	r.logger.WithK(k).InfoContext(ctx, "selected best run",
		"restarts", restarts,
		"seed", best.Seed,
		"inertia", best.Inertia(),
	)
	return best, nil
}

func (r *runner) nearest(ctx context.Context, points model.PointSet, query model.Point) (model.QueryResult, error) {
	return clusterviz.Nearest(ctx, points, query, r.options()...)
}
