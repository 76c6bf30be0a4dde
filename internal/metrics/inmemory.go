package metrics

import (
	"sync"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BackendRequests        map[string]uint64
	BackendDurationCount   map[string]uint64
	BackendDurationTotalNs map[string]int64
	HistoryWrites          map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu                     sync.Mutex
	backendRequests        map[string]uint64
	backendDurationCount   map[string]uint64
	backendDurationTotalNs map[string]int64
	historyWrites          map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		backendRequests:        make(map[string]uint64),
		backendDurationCount:   make(map[string]uint64),
		backendDurationTotalNs: make(map[string]int64),
		historyWrites:          make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters. Keys are "domain/outcome" for
// backend requests and "mode/outcome" for history writes.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		BackendRequests:        copyCounters(m.backendRequests),
		BackendDurationCount:   copyCounters(m.backendDurationCount),
		BackendDurationTotalNs: copyCounters(m.backendDurationTotalNs),
		HistoryWrites:          copyCounters(m.historyWrites),
	}
}

// IncBackendRequest increments the per-domain request counter.
func (m *InMemoryRecorder) IncBackendRequest(domain, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backendRequests[domain+"/"+outcome]++
}

// ObserveBackendDuration records a downstream call duration.
func (m *InMemoryRecorder) ObserveBackendDuration(domain string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backendDurationCount[domain]++
	m.backendDurationTotalNs[domain] += duration.Nanoseconds()
}

// IncHistoryWrite increments the history write counter.
func (m *InMemoryRecorder) IncHistoryWrite(mode, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyWrites[mode+"/"+outcome]++
}

func copyCounters[V uint64 | int64](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
