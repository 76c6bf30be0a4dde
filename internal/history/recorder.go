// Package history records view and playback events against the user
// service on behalf of authenticated callers.
package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/metrics"
	"github.com/tunebridge/tunebridge/internal/token"
)

// Kind names the reference field a history entry points at.
type Kind string

const (
	KindAlbum    Kind = "albumId"
	KindMusic    Kind = "musicId"
	KindPlaylist Kind = "playlistId"
)

// asyncTimeout bounds fire-and-forget writes, which have no caller
// context to inherit a deadline from.
const asyncTimeout = 10 * time.Second

// Recorder verifies the caller's credential and writes one history entry
// per event. Record waits for the write; RecordAsync dispatches it and
// returns immediately.
type Recorder struct {
	verifier *token.Verifier
	users    *backend.UserClient
	logger   *slog.Logger
	metrics  metrics.Recorder

	wg sync.WaitGroup
}

func NewRecorder(verifier *token.Verifier, users *backend.UserClient, logger *slog.Logger, recorder metrics.Recorder) *Recorder {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Recorder{
		verifier: verifier,
		users:    users,
		logger:   logger.With("component", "history"),
		metrics:  recorder,
	}
}

// Record verifies the credential, writes one entry and returns the
// resolved subject. Call sites that must reflect the entry before
// answering use this form; its failure is the caller's failure.
func (r *Recorder) Record(ctx context.Context, credential string, kind Kind, value string) (string, error) {
	subject, err := r.verifier.Verify(credential)
	if err != nil {
		r.metrics.IncHistoryWrite("awaited", "error")
		return "", err
	}
	if err := r.users.SaveHistory(ctx, subject, string(kind), value); err != nil {
		r.metrics.IncHistoryWrite("awaited", "error")
		return "", err
	}
	r.metrics.IncHistoryWrite("awaited", "success")
	return subject, nil
}

// RecordAsync dispatches the write without waiting. Failures are logged
// and never reach the caller; Close drains whatever is still in flight.
func (r *Recorder) RecordAsync(credential string, kind Kind, value string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		subject, err := r.verifier.Verify(credential)
		if err != nil {
			r.metrics.IncHistoryWrite("async", "error")
			r.logger.Warn("history write skipped", "kind", string(kind), "error", err)
			return
		}
		if err := r.users.SaveHistory(ctx, subject, string(kind), value); err != nil {
			r.metrics.IncHistoryWrite("async", "error")
			r.logger.Warn("history write failed", "kind", string(kind), "value", value, "error", err)
			return
		}
		r.metrics.IncHistoryWrite("async", "success")
	}()
}

// Close waits for in-flight asynchronous writes, giving up when the
// context expires. Wired as a shutdown hook.
func (r *Recorder) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
