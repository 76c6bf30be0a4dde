package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/tunebridge/tunebridge/internal/model"
)

// MusicClient calls the music service.
type MusicClient struct {
	c *Client
}

func NewMusicClient(c *Client) *MusicClient {
	return &MusicClient{c: c}
}

// List returns tracks, paginated only when both page and size are given.
func (m *MusicClient) List(ctx context.Context, page, size *int32) ([]*model.Music, error) {
	path := "/music"
	if page != nil && size != nil {
		path = fmt.Sprintf("/music?page=%d&size=%d", *page, *size)
	}
	var out []*model.Music
	err := m.c.doJSON(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

// Albums returns every album grouping.
func (m *MusicClient) Albums(ctx context.Context) ([]*model.Album, error) {
	var out []*model.Album
	err := m.c.doJSON(ctx, http.MethodGet, "/music/author", nil, nil, &out)
	return out, err
}

// AlbumsByAuthor returns the albums of one author.
func (m *MusicClient) AlbumsByAuthor(ctx context.Context, author string) ([]*model.Album, error) {
	var out []*model.Album
	err := m.c.doJSON(ctx, http.MethodGet, "/music/author/"+url.PathEscape(author), nil, nil, &out)
	return out, err
}

// GetByID returns one track.
func (m *MusicClient) GetByID(ctx context.Context, id string) (*model.Music, error) {
	var out *model.Music
	err := m.c.doJSON(ctx, http.MethodGet, "/music/unique/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// PlayURL returns the playback address for a track. The service derives
// file names from ids with the hyphens removed.
func (m *MusicClient) PlayURL(ctx context.Context, id string) (string, error) {
	name := strings.ReplaceAll(id, "-", "")
	return m.c.doText(ctx, http.MethodGet, "/music/play/"+url.PathEscape(name)+".mp3", nil)
}

// Search returns tracks matching the query.
func (m *MusicClient) Search(ctx context.Context, search string) ([]*model.Music, error) {
	var out []*model.Music
	err := m.c.doJSON(ctx, http.MethodGet, "/music/search?search="+url.QueryEscape(search), nil, nil, &out)
	return out, err
}

// Info returns the metadata of an external (YouTube) reference.
func (m *MusicClient) Info(ctx context.Context, id string) (*model.Music, error) {
	var out *model.Music
	err := m.c.doJSON(ctx, http.MethodGet, "/music/info/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// UploadByURL asks the service to ingest a track from an external URL.
// The caller's raw credential is forwarded for the service's own checks.
func (m *MusicClient) UploadByURL(ctx context.Context, mediaURL, credential string) (*model.Music, error) {
	payload := map[string]string{"id": mediaURL}
	var out *model.Music
	err := m.c.doJSON(ctx, http.MethodPost, "/music/url", payload, authHeader(credential), &out)
	return out, err
}

// Upload sends an audio file as multipart form data.
func (m *MusicClient) Upload(ctx context.Context, file model.File, credential string) (*model.Music, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("files", file.Name)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.c.baseURL+"/music/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	applyHeader(req, authHeader(credential))

	resp, err := m.c.do(req, "/music/upload")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, decodeError(resp)
	}
	var out *model.Music
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return out, nil
}

// Delete removes a track, forwarding the caller's credential.
func (m *MusicClient) Delete(ctx context.Context, id, credential string) (*model.Music, error) {
	var out *model.Music
	err := m.c.doJSON(ctx, http.MethodDelete, "/music/"+url.PathEscape(id), nil, authHeader(credential), &out)
	return out, err
}
