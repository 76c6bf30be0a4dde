package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/mediation"
	"github.com/tunebridge/tunebridge/internal/model"
	"github.com/tunebridge/tunebridge/internal/testutil"
	"github.com/tunebridge/tunebridge/internal/token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserMediator(t *testing.T) (*UserMediator, *testutil.StubBackend) {
	t.Helper()
	stub := testutil.NewStubBackend(t)
	client := backend.New(stub.URL, testLogger(), nil)
	users := backend.NewUserClient(client)
	verifier := token.NewVerifier(testutil.Secret)
	return NewUserMediator(users, verifier, testLogger()), stub
}

func asExternal(t *testing.T, err error) *mediation.GraphQLError {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var ext *mediation.GraphQLError
	if !errors.As(err, &ext) {
		t.Fatalf("error = %T (%v), want *mediation.GraphQLError", err, err)
	}
	return ext
}

func extCode(t *testing.T, ext *mediation.GraphQLError) int {
	t.Helper()
	extensions := ext.Extensions()
	if extensions == nil {
		t.Fatalf("error %q carries no extensions", ext.Message)
	}
	code, ok := extensions["code"].(int)
	if !ok {
		t.Fatalf("extensions.code = %v, want int", extensions["code"])
	}
	return code
}

func TestGetAllUsersEmptyIsNotFound(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodGet, "/user", http.StatusOK, `[]`)

	_, err := m.GetAllUsers(context.Background())
	ext := asExternal(t, err)
	if ext.Message != "No users found - There are no users in the database" {
		t.Errorf("message = %q", ext.Message)
	}
	if code := extCode(t, ext); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestGetUserByIDValidationBeforeNetwork(t *testing.T) {
	m, stub := newUserMediator(t)

	_, err := m.GetUserByID(context.Background(), "")
	ext := asExternal(t, err)
	if code := extCode(t, ext); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, validation must run first", stub.RequestCount())
	}
}

func TestGetUserByIDNilEntity(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodGet, "/user/u404", http.StatusOK, `null`)

	_, err := m.GetUserByID(context.Background(), "u404")
	ext := asExternal(t, err)
	if code := extCode(t, ext); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	m, stub := newUserMediator(t)

	for _, tc := range []struct{ email, hash string }{
		{"", "h"}, {"a@example.com", ""}, {"", ""},
	} {
		_, err := m.Login(context.Background(), tc.email, tc.hash)
		ext := asExternal(t, err)
		if code := extCode(t, ext); code != http.StatusBadRequest {
			t.Errorf("Login(%q,%q) code = %d, want 400", tc.email, tc.hash, code)
		}
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestLoginNilAnswerIsNotFound(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodPost, "/user/login", http.StatusOK, `null`)

	_, err := m.Login(context.Background(), "a@example.com", "h")
	ext := asExternal(t, err)
	if code := extCode(t, ext); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestGetUserMusicRequiresCredential(t *testing.T) {
	m, stub := newUserMediator(t)

	_, err := m.GetUserMusic(context.Background(), "")
	ext := asExternal(t, err)
	if ext.Message != "UNAUTHENTICATED - Token is undefined" {
		t.Errorf("message = %q", ext.Message)
	}
	if code := extCode(t, ext); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestGetUserMusicResolvesSubjectPath(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodGet, "/user/music/alice@example.com", http.StatusOK, `[{"id":"m1","name":"n","author":"a","album":"al","size":1,"duration":2}]`)

	music, err := m.GetUserMusic(context.Background(), testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("GetUserMusic() error = %v", err)
	}
	if len(music) != 1 || music[0].ID != "m1" {
		t.Errorf("music = %+v", music)
	}
}

func TestGetUserHistory(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodGet, "/user/history/alice@example.com", http.StatusOK,
		`{"user":{"id":"u1","userName":"alice","email":"alice@example.com","passwordHash":"h","verify":true,"image":null},"history":[{"id":"h1","userId":"u1","musicId":"m1","timestamp":"2024-01-01"}]}`)

	got, err := m.GetUserHistory(context.Background(), testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("GetUserHistory() error = %v", err)
	}
	if got.User == nil || got.User.UserName != "alice" {
		t.Errorf("user = %+v", got.User)
	}
	if len(got.History) != 1 || got.History[0].MusicID == nil || *got.History[0].MusicID != "m1" {
		t.Errorf("history = %+v", got.History)
	}
}

func TestCreateUserValidation(t *testing.T) {
	m, stub := newUserMediator(t)

	_, err := m.CreateUser(context.Background(), model.UserCreate{UserName: "alice", Email: "a@example.com"})
	ext := asExternal(t, err)
	if code := extCode(t, ext); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestBackendErrorSurfacesDownstreamStatus(t *testing.T) {
	m, stub := newUserMediator(t)
	stub.Handle(http.MethodGet, "/user", http.StatusServiceUnavailable, `{"error":"maintenance"}`)

	_, err := m.GetAllUsers(context.Background())
	ext := asExternal(t, err)
	if ext.Message != "Service Unavailable - maintenance" {
		t.Errorf("message = %q", ext.Message)
	}
	if code := extCode(t, ext); code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", code)
	}
}
