package recgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each KNN call. k is the number of
	// neighbors requested, scored and skipped count the candidates
	// that were ranked respectively excluded, duration is the total
	// time taken and err is nil on success.
	RecordSearch(k, scored, skipped int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount        atomic.Int64
	SearchErrors       atomic.Int64
	SearchTotalNanos   atomic.Int64
	CandidatesScored   atomic.Int64
	CandidatesSkipped  atomic.Int64
	NeighborsRequested atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, scored, skipped int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.CandidatesScored.Add(int64(scored))
	b.CandidatesSkipped.Add(int64(skipped))
	b.NeighborsRequested.Add(int64(k))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:        b.SearchCount.Load(),
		SearchErrors:       b.SearchErrors.Load(),
		SearchAvgNanos:     b.getAvgSearchNanos(),
		CandidatesScored:   b.CandidatesScored.Load(),
		CandidatesSkipped:  b.CandidatesSkipped.Load(),
		NeighborsRequested: b.NeighborsRequested.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount        int64
	SearchErrors       int64
	SearchAvgNanos     int64
	CandidatesScored   int64
	CandidatesSkipped  int64
	NeighborsRequested int64
}
