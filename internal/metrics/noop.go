package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncBackendRequest is a no-op.
func (n *NoopRecorder) IncBackendRequest(domain, outcome string) {}

// ObserveBackendDuration is a no-op.
func (n *NoopRecorder) ObserveBackendDuration(domain string, duration time.Duration) {}

// IncHistoryWrite is a no-op.
func (n *NoopRecorder) IncHistoryWrite(mode, outcome string) {}
