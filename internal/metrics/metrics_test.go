package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_IncAndAdd(t *testing.T) {
	r := NewRegistry()

	r.Inc(SummarizeRequestsTotal)
	r.Add(SummarizeRequestsTotal, 2)

	snap := r.Snapshot()
	assert.Equal(t, int64(3), snap[string(SummarizeRequestsTotal)])
}

func TestRegistry_MultipleCounters(t *testing.T) {
	r := NewRegistry()

	r.Inc(SummariesGeneratedTotal)
	r.Inc(SummaryFailuresTotal)
	r.Add(HostsProcessedTotal, 5)

	snap := r.Snapshot()

	assert.Equal(t, int64(1), snap[string(SummariesGeneratedTotal)])
	assert.Equal(t, int64(1), snap[string(SummaryFailuresTotal)])
	assert.Equal(t, int64(5), snap[string(HostsProcessedTotal)])
}

func TestRegistry_ConcurrentUpdates(t *testing.T) {
	r := NewRegistry()
	wg := sync.WaitGroup{}

	workers := 50
	increments := 100

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				r.Inc(SummarizeRequestsTotal)
			}
		}()
	}

	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, int64(workers*increments), snap[string(SummarizeRequestsTotal)])
}

func TestRegistry_SnapshotIsDeepCopy(t *testing.T) {
	r := NewRegistry()

	r.Inc(PayloadsRejectedTotal)
	snap1 := r.Snapshot()

	// Mutate snapshot
	snap1[string(PayloadsRejectedTotal)] = 999

	// Fetch fresh snapshot
	snap2 := r.Snapshot()

	assert.Equal(t, int64(1), snap2[string(PayloadsRejectedTotal)],
		"internal state should not be affected by snapshot mutation")
}

func TestRegistry_UnknownCounterHandledGracefully(t *testing.T) {
	r := NewRegistry()

	r.Inc("unknown_counter")

	snap := r.Snapshot()
	assert.Equal(t, int64(1), snap["unknown_counter"])
}
