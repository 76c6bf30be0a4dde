// Package testutil provides shared helpers for gateway tests: token
// factories, stub downstream services and data factories.
package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tunebridge/tunebridge/internal/model"
)

// Secret is the signing secret used across tests.
const Secret = "test-secret"

// SignCredential returns a "Bearer <jwt>" value for the given subject,
// signed with Secret.
func SignCredential(t testing.TB, email string) string {
	t.Helper()
	return "Bearer " + SignToken(t, Secret, email)
}

// SignToken returns a compact HS256 JWT carrying the email claim.
func SignToken(t testing.TB, secret, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// RecordedRequest captures one request a StubBackend received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

// StubBackend is an httptest server standing in for the downstream
// services gateway. Routes map "METHOD /path" to a canned response;
// unmatched requests answer 404 with a JSON error body.
type StubBackend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	routes   map[string]StubResponse
}

// StubResponse is a canned answer for one route.
type StubResponse struct {
	Status int
	Body   string
}

// NewStubBackend starts a stub and registers cleanup.
func NewStubBackend(t testing.TB) *StubBackend {
	t.Helper()
	s := &StubBackend{routes: make(map[string]StubResponse)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a canned response for "METHOD /path".
func (s *StubBackend) Handle(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = StubResponse{Status: status, Body: body}
}

func (s *StubBackend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	resp, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"no route"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	fmt.Fprint(w, resp.Body)
}

// Requests returns a copy of everything received so far.
func (s *StubBackend) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many requests hit the stub.
func (s *StubBackend) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestMusic creates a test track with sensible defaults.
func NewTestMusic(t testing.TB, id string) *model.Music {
	t.Helper()
	return &model.Music{
		ID:       id,
		Name:     "Track " + id,
		Author:   "Test Author",
		Album:    "Test Album",
		Size:     1024,
		Duration: 180.5,
	}
}

// NewTestPlaylist creates a test playlist with sensible defaults.
func NewTestPlaylist(t testing.TB, id, owner string) *model.Playlist {
	t.Helper()
	return &model.Playlist{
		ID:     id,
		Name:   "Playlist " + id,
		UserID: owner,
	}
}

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	return &model.User{
		ID:           fmt.Sprintf("user-%d", time.Now().UnixNano()),
		UserName:     "tester",
		Email:        email,
		PasswordHash: "hash",
		Verify:       true,
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
