package chartjs

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each resolve operation.
	// mode is the selection mode name, hits is the result count,
	// duration is the time taken.
	RecordResolve(mode string, hits int, duration time.Duration)

	// RecordBatchResolve is called after each batch resolve operation.
	// events is the number of events resolved, err is nil if successful.
	RecordBatchResolve(events int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(string, int, time.Duration)     {}
func (NoopMetricsCollector) RecordBatchResolve(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveHits       atomic.Int64
	ResolveTotalNanos atomic.Int64
	BatchCount        atomic.Int64
	BatchEvents       atomic.Int64
	BatchErrors       atomic.Int64

	mu            sync.Mutex
	resolveByMode map[string]int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(mode string, hits int, duration time.Duration) {
	b.ResolveCount.Add(1)
	b.ResolveHits.Add(int64(hits))
	b.ResolveTotalNanos.Add(duration.Nanoseconds())

	b.mu.Lock()
	if b.resolveByMode == nil {
		b.resolveByMode = make(map[string]int64)
	}
	b.resolveByMode[mode]++
	b.mu.Unlock()
}

// RecordBatchResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchResolve(events int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchEvents.Add(int64(events))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	byMode := make(map[string]int64, len(b.resolveByMode))
	for mode, n := range b.resolveByMode {
		byMode[mode] = n
	}
	b.mu.Unlock()

	return BasicMetricsStats{
		ResolveCount:    b.ResolveCount.Load(),
		ResolveByMode:   byMode,
		ResolveHits:     b.ResolveHits.Load(),
		ResolveAvgNanos: b.getAvgResolveNanos(),
		BatchCount:      b.BatchCount.Load(),
		BatchEvents:     b.BatchEvents.Load(),
		BatchErrors:     b.BatchErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgResolveNanos() int64 {
	count := b.ResolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ResolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ResolveCount    int64
	ResolveByMode   map[string]int64
	ResolveHits     int64
	ResolveAvgNanos int64
	BatchCount      int64
	BatchEvents     int64
	BatchErrors     int64
}
