package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tunebridge/tunebridge/internal/backend"
	"github.com/tunebridge/tunebridge/internal/history"
	"github.com/tunebridge/tunebridge/internal/model"
	"github.com/tunebridge/tunebridge/internal/testutil"
	"github.com/tunebridge/tunebridge/internal/token"
)

func newPlaylistMediator(t *testing.T) (*PlaylistMediator, *testutil.StubBackend) {
	t.Helper()
	stub := testutil.NewStubBackend(t)
	client := backend.New(stub.URL, testLogger(), nil)
	verifier := token.NewVerifier(testutil.Secret)
	recorder := history.NewRecorder(verifier, backend.NewUserClient(client), testLogger(), nil)
	return NewPlaylistMediator(backend.NewPlaylistClient(client), recorder, verifier, testLogger()), stub
}

func TestPlaylistEmptyListKeepsLegacyMessage(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodGet, "/playlist", http.StatusOK, `[]`)

	_, err := m.GetAllOrPaginate(context.Background(), nil, nil)
	ext := asExternal(t, err)
	if ext.Message != "No music found - There are no music in the database" {
		t.Errorf("message = %q, the legacy wording is part of the contract", ext.Message)
	}
	if code := extCode(t, ext); code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", code)
	}
}

func TestGetUserPlaylistsRequiresCredential(t *testing.T) {
	m, stub := newPlaylistMediator(t)

	_, err := m.GetUserPlaylists(context.Background(), "")
	ext := asExternal(t, err)
	if ext.Message != "BAD_REQUEST - The token is required" {
		t.Errorf("message = %q", ext.Message)
	}
	if code := extCode(t, ext); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestGetMusicRecordsAwaitedHistory(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodPost, "/user/history", http.StatusCreated, `{}`)
	stub.Handle(http.MethodGet, "/playlist/music/p1", http.StatusOK, `{"id":"p1","name":"Mix","userId":"u","music":[]}`)

	playlist, err := m.GetMusic(context.Background(), "p1", testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("GetMusic() error = %v", err)
	}
	if playlist.ID != "p1" {
		t.Errorf("playlist = %+v", playlist)
	}

	reqs := stub.Requests()
	if len(reqs) != 2 || reqs[0].Path != "/user/history" {
		t.Errorf("first request = %+v, want the history write first", reqs[0])
	}
	var body map[string]string
	if err := json.Unmarshal(reqs[0].Body, &body); err != nil {
		t.Fatalf("unmarshal history body: %v", err)
	}
	if body["playlistId"] != "p1" {
		t.Errorf("history body = %v, want playlistId p1", body)
	}
}

func TestGetMusicAnonymousSkipsHistory(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodGet, "/playlist/music/p1", http.StatusOK, `{"id":"p1","name":"Mix","userId":"u"}`)

	if _, err := m.GetMusic(context.Background(), "p1", ""); err != nil {
		t.Fatalf("GetMusic() error = %v", err)
	}
	if historyRequests(stub) != 0 {
		t.Error("anonymous access must not record history")
	}
}

func TestGetUserLikesRequiresCredential(t *testing.T) {
	m, stub := newPlaylistMediator(t)

	_, err := m.GetUserLikes(context.Background(), "p1", "")
	ext := asExternal(t, err)
	if ext.Message != "UNAUTHENTICATED - An authentication token was not provided" {
		t.Errorf("message = %q", ext.Message)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestGetUserLikesRecordsAndResolvesSubject(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodPost, "/user/history", http.StatusCreated, `{}`)
	stub.Handle(http.MethodPost, "/playlist/user/likes", http.StatusOK, `{"id":"l1","playlistId":"p1","userId":"alice@example.com","action":"like"}`)

	likes, err := m.GetUserLikes(context.Background(), "p1", testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("GetUserLikes() error = %v", err)
	}
	if likes.UserID != "alice@example.com" {
		t.Errorf("likes = %+v", likes)
	}

	var body map[string]string
	reqs := stub.Requests()
	if err := json.Unmarshal(reqs[1].Body, &body); err != nil {
		t.Fatalf("unmarshal likes body: %v", err)
	}
	if body["userId"] != "alice@example.com" {
		t.Errorf("likes lookup userId = %q, want the verified subject", body["userId"])
	}
}

func TestCreateAttachesVerifiedOwner(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodPost, "/playlist", http.StatusCreated, `{"id":"p1","name":"Mix","userId":"alice@example.com"}`)

	input := model.PlaylistCreate{Name: "Mix", UserID: "spoofed@example.com"}
	created, err := m.Create(context.Background(), input, testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != "p1" {
		t.Errorf("created = %+v", created)
	}

	var body map[string]any
	if err := json.Unmarshal(stub.Requests()[0].Body, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["userId"] != "alice@example.com" {
		t.Errorf("userId = %v, the owner must come from the credential", body["userId"])
	}
}

func TestCreateRequiresCredential(t *testing.T) {
	m, stub := newPlaylistMediator(t)

	_, err := m.Create(context.Background(), model.PlaylistCreate{Name: "Mix"}, "")
	ext := asExternal(t, err)
	if ext.Message != "UNAUTHENTICATED - The token is required" {
		t.Errorf("message = %q", ext.Message)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestAddMusicRequiresBothIDs(t *testing.T) {
	m, stub := newPlaylistMediator(t)

	for _, tc := range []struct{ playlist, music string }{
		{"", "m1"}, {"p1", ""}, {"", ""},
	} {
		_, err := m.AddMusic(context.Background(), tc.playlist, tc.music)
		ext := asExternal(t, err)
		if code := extCode(t, ext); code != http.StatusBadRequest {
			t.Errorf("AddMusic(%q,%q) code = %d, want 400", tc.playlist, tc.music, code)
		}
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}

func TestUpdateLikeVerifiesAndForwardsSubject(t *testing.T) {
	m, stub := newPlaylistMediator(t)
	stub.Handle(http.MethodPost, "/playlist/like", http.StatusOK, `{"id":"l1","playlistId":"p1","userId":"alice@example.com","action":"like"}`)

	likes, err := m.UpdateLike(context.Background(), "p1", "like", testutil.SignCredential(t, "alice@example.com"))
	if err != nil {
		t.Fatalf("UpdateLike() error = %v", err)
	}
	if likes.Action != "like" {
		t.Errorf("likes = %+v", likes)
	}

	var body map[string]string
	if err := json.Unmarshal(stub.Requests()[0].Body, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["userId"] != "alice@example.com" {
		t.Errorf("userId = %q, want the verified subject", body["userId"])
	}
}

func TestDeleteRequiresCredentialPlaylist(t *testing.T) {
	m, stub := newPlaylistMediator(t)

	_, err := m.Delete(context.Background(), "p1", "")
	ext := asExternal(t, err)
	if code := extCode(t, ext); code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if stub.RequestCount() != 0 {
		t.Errorf("got %d backend requests, want none", stub.RequestCount())
	}
}
