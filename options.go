package clusterviz

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hupe1980/clusterviz/internal/kmeans"
)

type options struct {
	rng              *rand.Rand
	seed             int64
	seedSet          bool
	maxIters         int
	tol              float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Cluster and Nearest.
type Option func(*options)

// WithSeed seeds a fresh random source for centroid initialization and
// empty-cluster reseeding. Two runs with the same seed and input produce
// identical results.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
		o.rng = nil
	}
}

// WithRand uses rng as the random source. The source is advanced by the run,
// so sharing it between calls yields different initializations each time.
//
// If nil is passed, a time-seeded source is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
		o.seedSet = false
	}
}

// WithMaxIters bounds the number of assign/update rounds (default 100).
// Values < 1 keep the default.
func WithMaxIters(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxIters = n
		}
	}
}

// WithTolerance sets the convergence threshold on summed centroid movement
// (default 1e-4).
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tol = tol
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &clusterviz.BasicMetricsCollector{}
//	res, _ := clusterviz.Cluster(ctx, points, 3, clusterviz.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.ClusterCount, stats.ClusterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := clusterviz.NewJSONLogger(slog.LevelInfo)
//	res, _ := clusterviz.Cluster(ctx, points, 3, clusterviz.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIters:         kmeans.DefaultOptions.MaxIters,
		tol:              kmeans.DefaultOptions.Tol,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// source returns the random source for one run and the seed it was built
// from. The seed is 0 when the caller supplied its own *rand.Rand.
func (o *options) source() (*rand.Rand, int64) {
	if o.rng != nil {
		return o.rng, 0
	}
	seed := o.seed
	if !o.seedSet {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
