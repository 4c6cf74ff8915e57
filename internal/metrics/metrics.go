package metrics

import (
	"sync"
	"sync/atomic"
)

// MetricKey is a strongly typed counter identifier.
type MetricKey string

// Counter keys (centralized)
const (
	// Summarize pipeline
	SummarizeRequestsTotal MetricKey = "summarize_requests_total"
	HostsProcessedTotal    MetricKey = "hosts_processed_total"
	PayloadsRejectedTotal  MetricKey = "payloads_rejected_total"

	// Upstream completion API
	SummariesGeneratedTotal   MetricKey = "summaries_generated_total"
	SummaryFailuresTotal      MetricKey = "summary_failures_total"
	UpstreamAuthFailuresTotal MetricKey = "upstream_auth_failures_total"

	// HTTP server
	PanicsRecoveredTotal MetricKey = "panics_recovered_total"
)

// Registry stores all counters for the process.
type Registry struct {
	mu       sync.RWMutex
	counters map[MetricKey]*int64
}

// NewRegistry creates an empty counter registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[MetricKey]*int64),
	}
}

// Inc increments a counter by 1.
func (r *Registry) Inc(key MetricKey) {
	r.Add(key, 1)
}

// Add increments a counter by delta, lazily creating it on first use.
func (r *Registry) Add(key MetricKey, delta int64) {
	r.mu.RLock()
	ptr, ok := r.counters[key]
	r.mu.RUnlock()

	if ok {
		atomic.AddInt64(ptr, delta)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock; another goroutine may have created it.
	if ptr, ok = r.counters[key]; ok {
		atomic.AddInt64(ptr, delta)
		return
	}

	var val int64
	r.counters[key] = &val
	atomic.AddInt64(&val, delta)
}

// Snapshot returns a deep copy of all counters. Safe for concurrent use and
// immune to external mutation.
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.counters))
	for key, ptr := range r.counters {
		out[string(key)] = atomic.LoadInt64(ptr)
	}
	return out
}
