// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the gateway.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Backend call metrics, keyed by downstream domain ("user",
	// "music", "playlist"). Outcome is "success" or "error".
	IncBackendRequest(domain, outcome string)
	ObserveBackendDuration(domain string, duration time.Duration)

	// History recording metrics. Mode is "awaited" or "async".
	IncHistoryWrite(mode, outcome string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
