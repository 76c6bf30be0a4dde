package backend

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestListPagination(t *testing.T) {
	page, size := int32(2), int32(25)

	tests := []struct {
		name      string
		page      *int32
		size      *int32
		wantPath  string
		wantQuery string
	}{
		{"both present", &page, &size, "/music", "page=2&size=25"},
		{"only page", &page, nil, "/music", ""},
		{"only size", nil, &size, "/music", ""},
		{"neither", nil, nil, "/music", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, stub := newTestClient(t)
			stub.Handle(http.MethodGet, "/music", http.StatusOK, `[{"id":"m1","name":"n","author":"a","album":"al","size":1,"duration":2}]`)

			music := NewMusicClient(client)
			if _, err := music.List(context.Background(), tt.page, tt.size); err != nil {
				t.Fatalf("List() error = %v", err)
			}

			reqs := stub.Requests()
			if len(reqs) != 1 {
				t.Fatalf("got %d requests, want 1", len(reqs))
			}
			if reqs[0].Path != tt.wantPath {
				t.Errorf("path = %q, want %q", reqs[0].Path, tt.wantPath)
			}
			if reqs[0].Query != tt.wantQuery {
				t.Errorf("query = %q, want %q", reqs[0].Query, tt.wantQuery)
			}
		})
	}
}

func TestPlayURLStripsHyphens(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Handle(http.MethodGet, "/music/play/abc123.mp3", http.StatusOK, "https://cdn.example.com/abc123.mp3")

	music := NewMusicClient(client)
	got, err := music.PlayURL(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("PlayURL() error = %v", err)
	}
	if got != "https://cdn.example.com/abc123.mp3" {
		t.Errorf("PlayURL() = %q", got)
	}

	reqs := stub.Requests()
	if reqs[0].Path != "/music/play/abc123.mp3" {
		t.Errorf("path = %q, want %q", reqs[0].Path, "/music/play/abc123.mp3")
	}
}

func TestSearchEscapesQuery(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Handle(http.MethodGet, "/music/search", http.StatusOK, `[]`)

	music := NewMusicClient(client)
	if _, err := music.Search(context.Background(), "bohemian rhapsody"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	reqs := stub.Requests()
	if reqs[0].Query != "search=bohemian+rhapsody" {
		t.Errorf("query = %q, want %q", reqs[0].Query, "search=bohemian+rhapsody")
	}
}

func TestUploadByURLForwardsCredential(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Handle(http.MethodPost, "/music/url", http.StatusOK, `{"id":"m9","name":"n","author":"a","album":"al","size":1,"duration":2}`)

	music := NewMusicClient(client)
	got, err := music.UploadByURL(context.Background(), "https://youtu.be/x", "Bearer tok")
	if err != nil {
		t.Fatalf("UploadByURL() error = %v", err)
	}
	if got == nil || got.ID != "m9" {
		t.Errorf("UploadByURL() = %+v, want id m9", got)
	}

	reqs := stub.Requests()
	if reqs[0].Auth != "Bearer tok" {
		t.Errorf("Authorization = %q, want forwarded credential", reqs[0].Auth)
	}
	if body := string(reqs[0].Body); !strings.Contains(body, `"id":"https://youtu.be/x"`) {
		t.Errorf("body = %s, want the URL under the id field", body)
	}
}

func TestDeleteForwardsCredential(t *testing.T) {
	client, stub := newTestClient(t)
	stub.Handle(http.MethodDelete, "/music/m1", http.StatusOK, `{"id":"m1","name":"n","author":"a","album":"al","size":1,"duration":2}`)

	music := NewMusicClient(client)
	if _, err := music.Delete(context.Background(), "m1", "Bearer tok"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	reqs := stub.Requests()
	if reqs[0].Method != http.MethodDelete || reqs[0].Path != "/music/m1" {
		t.Errorf("request = %s %s, want DELETE /music/m1", reqs[0].Method, reqs[0].Path)
	}
	if reqs[0].Auth != "Bearer tok" {
		t.Errorf("Authorization = %q, want forwarded credential", reqs[0].Auth)
	}
}
