package clusterviz

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCluster is called after each clustering run.
	// iterations and converged are zero values when err is non-nil.
	RecordCluster(k, iterations int, converged bool, duration time.Duration, err error)

	// RecordNearest is called after each nearest-neighbor query.
	RecordNearest(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCluster(int, int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordNearest(time.Duration, error)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClusterCount       atomic.Int64
	ClusterErrors      atomic.Int64
	ClusterUnconverged atomic.Int64
	ClusterIterations  atomic.Int64
	ClusterTotalNanos  atomic.Int64
	NearestCount       atomic.Int64
	NearestErrors      atomic.Int64
	NearestTotalNanos  atomic.Int64
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(k, iterations int, converged bool, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
		return
	}
	b.ClusterIterations.Add(int64(iterations))
	if !converged {
		b.ClusterUnconverged.Add(1)
	}
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(duration time.Duration, err error) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NearestErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClusterCount:       b.ClusterCount.Load(),
		ClusterErrors:      b.ClusterErrors.Load(),
		ClusterUnconverged: b.ClusterUnconverged.Load(),
		ClusterIterations:  b.ClusterIterations.Load(),
		ClusterAvgNanos:    avg(b.ClusterTotalNanos.Load(), b.ClusterCount.Load()),
		NearestCount:       b.NearestCount.Load(),
		NearestErrors:      b.NearestErrors.Load(),
		NearestAvgNanos:    avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClusterCount       int64
	ClusterErrors      int64
	ClusterUnconverged int64
	ClusterIterations  int64
	ClusterAvgNanos    int64
	NearestCount       int64
	NearestErrors      int64
	NearestAvgNanos    int64
}
