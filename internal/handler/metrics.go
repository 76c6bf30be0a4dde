package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/tunebridge/tunebridge/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, key := range sortedKeys(snap.BackendRequests) {
		domain, outcome := splitCounterKey(key)
		writeMetric(w, "tunebridge_backend_requests_total{domain=%q,outcome=%q} %d\n", domain, outcome, snap.BackendRequests[key])
	}
	for _, domain := range sortedKeys(snap.BackendDurationCount) {
		writeMetric(w, "tunebridge_backend_duration_seconds_count{domain=%q} %d\n", domain, snap.BackendDurationCount[domain])
		writeMetric(w, "tunebridge_backend_duration_seconds_sum{domain=%q} %.6f\n", domain, float64(snap.BackendDurationTotalNs[domain])/1e9)
	}
	for _, key := range sortedKeys(snap.HistoryWrites) {
		mode, outcome := splitCounterKey(key)
		writeMetric(w, "tunebridge_history_writes_total{mode=%q,outcome=%q} %d\n", mode, outcome, snap.HistoryWrites[key])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// splitCounterKey splits the recorder's "label/outcome" key form.
func splitCounterKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
